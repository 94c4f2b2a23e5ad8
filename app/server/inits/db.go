package inits

import (
	"errors"
	"fmt"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"net/url"
	"personal-blog/app/server/models"
	"strings"
)

func DB(conn string) (db *gorm.DB, err error) {
	dialector, err := Dialector(conn)
	if err != nil {
		return nil, fmt.Errorf("invalid database connection string: %w", err)
	}

	// 打开连接；TranslateError 让唯一键冲突变成 gorm.ErrDuplicatedKey
	if db, err = gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移（首次启动时即建表）
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

// Dialector 根据连接字符串选择数据库驱动，兼容 SQLAlchemy 风格的写法（例如 sqlite:///posts.db 、 postgresql+psycopg2://...）
func Dialector(conn string) (gorm.Dialector, error) {
	scheme, rest, found := strings.Cut(conn, "://")
	if !found {
		if strings.HasPrefix(conn, "file:") {
			return sqlite.Open(sqliteDSN(conn)), nil
		}
		return nil, fmt.Errorf("missing scheme in %q", conn)
	}

	// 去掉 SQLAlchemy 的驱动后缀
	scheme, _, _ = strings.Cut(strings.ToLower(scheme), "+")

	switch scheme {
	case "postgres", "postgresql":
		return postgres.Open(scheme + "://" + rest), nil
	case "mysql":
		dsn, err := mysqlDSN(rest)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case "sqlite", "sqlite3":
		// sqlite:///relative.db -> relative.db ， sqlite:////abs.db -> /abs.db
		path := strings.TrimPrefix(rest, "/")
		if path == "" {
			return nil, errors.New("empty sqlite path")
		}
		return sqlite.Open(sqliteDSN(path)), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

// sqliteDSN 打开外键约束，否则级联删除与引用完整性都不会生效
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=1"
	}
	return path + "?_foreign_keys=1"
}

func mysqlDSN(rest string) (string, error) {
	u, err := url.Parse("mysql://" + rest)
	if err != nil {
		return "", fmt.Errorf("parse mysql url: %w", err)
	}

	cfg := mysqldriver.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = u.Host + ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.ParseTime = true
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}

	if cfg.DBName == "" {
		return "", errors.New("missing mysql database name")
	}

	return cfg.FormatDSN(), nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	)
}

func initData(db *gorm.DB) (err error) {
	// 查询现有记录数量
	var counter int64

	// 旧版本的数据库里没有 is_admin 字段，管理员固定是 1 号用户；迁移后补上标记
	if err = db.Model(&models.User{}).Where("is_admin = ?", true).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get admin count: %w", err)
	} else if counter == 0 {
		if err = db.Model(&models.User{}).Where("id = ?", 1).Update("is_admin", true).Error; err != nil {
			return fmt.Errorf("failed to promote legacy admin user: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
