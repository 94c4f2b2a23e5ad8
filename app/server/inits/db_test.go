package inits

import (
	"gorm.io/gorm/logger"
	"personal-blog/app/server/models"
	"strings"
	"testing"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		conn string
		name string
	}{
		{"postgres://blog:pw@localhost/blog", "postgres"},
		{"postgresql+psycopg2://blog:pw@localhost:5432/blog", "postgres"},
		{"mysql://blog:pw@localhost/blog", "mysql"},
		{"mysql+pymysql://blog:pw@db:3307/blog", "mysql"},
		{"sqlite:///posts.db", "sqlite"},
		{"sqlite:////var/lib/blog/posts.db", "sqlite"},
		{"file:posts.db", "sqlite"},
	}

	for _, tt := range tests {
		d, err := Dialector(tt.conn)
		if err != nil {
			t.Errorf("%s: %v", tt.conn, err)
			continue
		}
		if d.Name() != tt.name {
			t.Errorf("%s: dialector %s, want %s", tt.conn, d.Name(), tt.name)
		}
	}

	for _, conn := range []string{"posts.db", "oracle://x", "sqlite://", "mysql://localhost"} {
		if _, err := Dialector(conn); err == nil {
			t.Errorf("%s: expected an error", conn)
		}
	}
}

func TestMySQLDSN(t *testing.T) {
	tests := []struct {
		rest string
		want string
	}{
		{"blog:pw@localhost/blog", "blog:pw@tcp(localhost:3306)/blog?parseTime=true"},
		{"blog@db:3307/posts", "blog@tcp(db:3307)/posts?parseTime=true"},
	}

	for _, tt := range tests {
		got, err := mysqlDSN(tt.rest)
		if err != nil {
			t.Errorf("%s: %v", tt.rest, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.rest, got, tt.want)
		}
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := map[string]string{
		"posts.db":                    "posts.db?_foreign_keys=1",
		"file:x?mode=memory":          "file:x?mode=memory&_foreign_keys=1",
		"posts.db?_foreign_keys=0":    "posts.db?_foreign_keys=0",
		"file:x?mode=memory&_fk=true": "file:x?mode=memory&_fk=true",
	}

	for in, want := range tests {
		if got := sqliteDSN(in); got != want {
			t.Errorf("%s: got %q, want %q", in, got, want)
		}
	}
}

func TestDBPromotesLegacyAdmin(t *testing.T) {
	conn := "sqlite://file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"

	db, err := DB(conn)
	if err != nil {
		t.Fatal(err)
	}
	db.Logger = logger.Discard
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// 旧数据库中的用户都没有管理员标记
	users := []models.User{
		{Name: "owner", Email: "owner@example.com", PasswordHash: "x"},
		{Name: "reader", Email: "reader@example.com", PasswordHash: "x"},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatal(err)
	}

	if err := initData(db); err != nil {
		t.Fatal(err)
	}

	var admins []models.User
	if err := db.Where("is_admin = ?", true).Find(&admins).Error; err != nil {
		t.Fatal(err)
	}
	if len(admins) != 1 || admins[0].ID != 1 {
		t.Errorf("admins = %+v, want only user 1", admins)
	}

	// 已经有管理员时不再改动
	if err := db.Model(&models.User{}).Where("id = ?", 1).Update("is_admin", false).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Model(&models.User{}).Where("id = ?", 2).Update("is_admin", true).Error; err != nil {
		t.Fatal(err)
	}
	if err := initData(db); err != nil {
		t.Fatal(err)
	}
	var owner models.User
	if err := db.First(&owner, 1).Error; err != nil {
		t.Fatal(err)
	}
	if owner.IsAdmin {
		t.Error("user 1 promoted although an admin exists")
	}
}
