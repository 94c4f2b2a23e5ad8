package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"personal-blog/app/server/middlewares"
	"personal-blog/app/server/sanitize"
	"personal-blog/app/server/store"
)

type postData struct {
	Post     postView      `json:"post"`
	Comments []commentView `json:"comments"`
	Form     commentForm   `json:"form"`
}

// PostView 展示文章与评论；POST 时为文章添加一条评论后重新展示
func (a *App) PostView(c echo.Context) error {
	id, ok := parsePostID(c)
	if !ok {
		return a.er(c, http.StatusNotFound)
	}

	rctx := c.Request().Context()

	post, err := a.st.GetPost(rctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to get post", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	statusCode := http.StatusOK
	var (
		form commentForm
		errs map[string]string
	)

	if c.Request().Method == http.MethodPost {
		// 绑定请求体
		if err := c.Bind(&form); err != nil {
			a.l.Error("failed to bind request", zap.Error(err))
			return a.er(c, http.StatusBadRequest)
		}

		if user := middlewares.CurrentUser(c); user == nil {
			a.flash(c, "You need to log in to comment")
		} else if text := sanitize.Text(form.Comment); text == "" {
			statusCode = http.StatusBadRequest
			errs = map[string]string{"comment": msgFieldRequired}
		} else if _, err := a.st.CreateComment(rctx, user, post.ID, text); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return a.er(c, http.StatusNotFound)
			}
			a.l.Error("failed to create comment", zap.Uint("postID", post.ID), zap.Uint("userID", user.ID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		} else {
			form = commentForm{}
		}
	}

	// 评论单独查询
	comments, err := a.st.ListComments(rctx, post.ID)
	if err != nil {
		a.l.Error("failed to list comments", zap.Uint("postID", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.render(c, statusCode, "post", &postData{
		Post:     newPostView(post),
		Comments: newCommentViews(comments),
		Form:     form,
	}, errs)
}
