package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

type homeData struct {
	Posts []postView `json:"posts"`
}

func (a *App) Home(c echo.Context) error {
	rctx := c.Request().Context()

	posts, err := a.st.ListPosts(rctx)
	if err != nil {
		a.l.Error("failed to list posts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	views := make([]postView, 0, len(posts))
	for i := range posts {
		views = append(views, newPostView(&posts[i]))
	}

	return a.render(c, http.StatusOK, "index", &homeData{Posts: views}, nil)
}
