package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"personal-blog/app/server/sanitize"
	"personal-blog/app/server/store"
)

// PostExport 将文章和评论导出为 PDF
func (a *App) PostExport(c echo.Context) error {
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

	comments, err := a.st.ListComments(rctx, post.ID)
	if err != nil {
		a.l.Error("failed to list comments", zap.Uint("postID", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // 内置字体只支持 cp1252
	pdf.SetTitle(post.Title, true)
	pdf.SetAuthor(post.Author.Name, true)
	pdf.AddPage()

	// 标题
	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, tr(post.Title), "", "L", false)
	pdf.SetFont("Helvetica", "I", 13)
	pdf.MultiCell(0, 7, tr(post.Subtitle), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("Posted by %s on %s", post.Author.Name, post.Date)), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// 正文是富文本，导出时只保留文字
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, tr(sanitize.Text(post.Body)), "", "L", false)

	if len(comments) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, "Comments", "", "L", false)
		for _, comment := range comments {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, tr(comment.Author.Name), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, tr(comment.Comment), "", "L", false)
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		a.l.Error("failed to render pdf", zap.Uint("postID", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`inline; filename="post-%d.pdf"`, post.ID))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
