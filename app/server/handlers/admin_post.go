package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"personal-blog/app/server/middlewares"
	"personal-blog/app/server/store"
)

const msgDuplicateTitle = "A post with this title already exists."

type postFormData struct {
	PostID uint     `json:"post_id,omitempty"`
	Form   postForm `json:"form"`
}

func (a *App) PostCreate(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return a.render(c, http.StatusOK, "create", &postFormData{}, nil)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req postForm
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 验证
	if errs := req.validate(); errs != nil {
		return a.render(c, http.StatusBadRequest, "create", &postFormData{Form: req}, errs)
	}

	user := middlewares.CurrentUser(c)
	post, err := a.st.CreatePost(rctx, user, req.fields(a.today()))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateTitle) {
			return a.render(c, http.StatusConflict, "create", &postFormData{Form: req}, map[string]string{
				"title": msgDuplicateTitle,
			})
		}
		a.l.Error("failed to create post", zap.String("title", req.Title), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.l.Info("post created", zap.Uint("id", post.ID), zap.String("title", post.Title), zap.Uint("authorID", user.ID))

	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) PostEdit(c echo.Context) error {
	id, ok := parsePostID(c)
	if !ok {
		return a.er(c, http.StatusNotFound)
	}

	rctx := c.Request().Context()

	// 从数据库中获得
	post, err := a.st.GetPost(rctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to get post", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if c.Request().Method != http.MethodPost {
		// 预填表单
		return a.render(c, http.StatusOK, "edit", &postFormData{
			PostID: post.ID,
			Form: postForm{
				Title:    post.Title,
				Subtitle: post.Subtitle,
				URL:      post.URL,
				Body:     post.Body,
			},
		}, nil)
	}

	// 绑定请求体
	var req postForm
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 验证
	if errs := req.validate(); errs != nil {
		return a.render(c, http.StatusBadRequest, "edit", &postFormData{PostID: post.ID, Form: req}, errs)
	}

	// 更新信息，日期也刷新为今天
	if _, err := a.st.UpdatePost(rctx, post.ID, req.fields(a.today())); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return a.er(c, http.StatusNotFound)
		case errors.Is(err, store.ErrDuplicateTitle):
			return a.render(c, http.StatusConflict, "edit", &postFormData{PostID: post.ID, Form: req}, map[string]string{
				"title": msgDuplicateTitle,
			})
		default:
			a.l.Error("failed to update post", zap.Uint("id", post.ID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.l.Info("post updated", zap.Uint("id", post.ID), zap.String("title", req.Title))

	return c.Redirect(http.StatusSeeOther, "/")
}

// PostDelete 删除文章（连同其评论），然后返回首页内容
func (a *App) PostDelete(c echo.Context) error {
	id, ok := parsePostID(c)
	if !ok {
		return a.erMessage(c, http.StatusBadRequest, "Invalid item ID")
	}

	rctx := c.Request().Context()

	// 删除
	if err := a.st.DeletePost(rctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete post", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.l.Info("post deleted", zap.Uint("id", id))

	return a.Home(c)
}
