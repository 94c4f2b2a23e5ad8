package handlers

import (
	"fmt"
	"personal-blog/app/server/store"
	"strings"
	"unicode/utf8"
)

const msgFieldRequired = "This field is required."

// 与数据库列长度一致
const (
	maxTitleLength = 250
	maxNameLength  = 150
)

// tooLong 超出长度时向 errs 中加入一条错误
func tooLong(errs map[string]string, name, value string, limit int) map[string]string {
	if utf8.RuneCountInString(value) <= limit {
		return errs
	}
	if errs == nil {
		errs = make(map[string]string)
	}
	if _, exist := errs[name]; !exist {
		errs[name] = fmt.Sprintf("Field cannot be longer than %d characters.", limit)
	}
	return errs
}

// required 检查必填字段，全部填写时返回 nil
func required(fields map[string]string) map[string]string {
	var errs map[string]string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs[name] = msgFieldRequired
		}
	}
	return errs
}

type postForm struct {
	Title    string `form:"title" json:"title"`
	Subtitle string `form:"subtitle" json:"subtitle"`
	URL      string `form:"url" json:"url"`
	Body     string `form:"body" json:"body"`
}

func (f *postForm) validate() map[string]string {
	f.Title = strings.TrimSpace(f.Title)
	f.Subtitle = strings.TrimSpace(f.Subtitle)
	f.URL = strings.TrimSpace(f.URL)

	errs := required(map[string]string{
		"title":    f.Title,
		"subtitle": f.Subtitle,
		"url":      f.URL,
		"body":     f.Body,
	})
	return tooLong(errs, "title", f.Title, maxTitleLength)
}

func (f *postForm) fields(date string) store.PostFields {
	return store.PostFields{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Body:     f.Body,
		URL:      f.URL,
		Date:     date,
	}
}

type commentForm struct {
	Comment string `form:"comment" json:"comment"`
}

type registerForm struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password,omitempty"`
}

func (f *registerForm) validate() map[string]string {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)

	errs := required(map[string]string{
		"name":     f.Name,
		"email":    f.Email,
		"password": f.Password,
	})
	return tooLong(errs, "name", f.Name, maxNameLength)
}

type loginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password,omitempty"`
}

func (f *loginForm) validate() map[string]string {
	f.Email = strings.TrimSpace(f.Email)

	return required(map[string]string{
		"email":    f.Email,
		"password": f.Password,
	})
}
