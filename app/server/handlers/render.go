package handlers

import (
	"github.com/labstack/echo/v4"
	"personal-blog/app/server/middlewares"
	"personal-blog/app/server/models"
)

// page 是每个页面的返回结构，模板渲染所需的全部数据都在这里
type page struct {
	Page        string            `json:"page"`
	CurrentUser *userView         `json:"current_user"`
	Flashes     []string          `json:"flashes"`
	Errors      map[string]string `json:"errors,omitempty"`
	Data        interface{}       `json:"data,omitempty"`
}

type userView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

type postView struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Date     string   `json:"date"`
	URL      string   `json:"url"`
	Body     string   `json:"body"`
	Author   userView `json:"author"`
}

type commentView struct {
	ID      uint     `json:"id"`
	Comment string   `json:"comment"`
	Author  userView `json:"author"`
}

func newUserView(user *models.User) *userView {
	if user == nil {
		return nil
	}
	return &userView{
		ID:      user.ID,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	}
}

func newPostView(post *models.Post) postView {
	return postView{
		ID:       post.ID,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Date:     post.Date,
		URL:      post.URL,
		Body:     post.Body,
		Author:   *newUserView(&post.Author),
	}
}

func newCommentViews(comments []models.Comment) []commentView {
	views := make([]commentView, 0, len(comments))
	for i := range comments {
		views = append(views, commentView{
			ID:      comments[i].ID,
			Comment: comments[i].Comment,
			Author:  *newUserView(&comments[i].Author),
		})
	}
	return views
}

func (a *App) render(c echo.Context, statusCode int, name string, data interface{}, errs map[string]string) error {
	return c.JSON(statusCode, &page{
		Page:        name,
		CurrentUser: newUserView(middlewares.CurrentUser(c)),
		Flashes:     a.popFlashes(c),
		Errors:      errs,
		Data:        data,
	})
}
