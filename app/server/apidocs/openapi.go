package apidocs

import (
	"github.com/getkin/kin-openapi/openapi3"
	"net/http"
)

type route struct {
	path        string
	method      string
	summary     string
	tag         string
	postID      bool     // 是否带 ?post_id=
	formFields  []string // 表单字段
	adminOnly   bool
	redirects   bool
	contentType string // 非 JSON 的响应类型，"-" 表示没有响应体
}

var routes = []route{
	{path: "/", method: http.MethodGet, summary: "List all posts", tag: "blog"},
	{path: "/post", method: http.MethodGet, summary: "Show a post with its comments", tag: "blog", postID: true},
	{path: "/post", method: http.MethodPost, summary: "Comment on a post (login required to persist)", tag: "blog", postID: true, formFields: []string{"comment"}},
	{path: "/post/pdf", method: http.MethodGet, summary: "Export a post as PDF", tag: "blog", postID: true, contentType: "application/pdf"},
	{path: "/create", method: http.MethodGet, summary: "Empty post form", tag: "admin", adminOnly: true},
	{path: "/create", method: http.MethodPost, summary: "Create a post", tag: "admin", adminOnly: true, redirects: true, formFields: []string{"title", "subtitle", "url", "body"}},
	{path: "/edit", method: http.MethodGet, summary: "Pre-filled post form", tag: "admin", adminOnly: true, postID: true},
	{path: "/edit", method: http.MethodPost, summary: "Update a post", tag: "admin", adminOnly: true, postID: true, redirects: true, formFields: []string{"title", "subtitle", "url", "body"}},
	{path: "/delete", method: http.MethodGet, summary: "Delete a post and list the rest", tag: "admin", adminOnly: true, postID: true},
	{path: "/delete", method: http.MethodPost, summary: "Delete a post and list the rest", tag: "admin", adminOnly: true, postID: true},
	{path: "/register", method: http.MethodGet, summary: "Registration form", tag: "account"},
	{path: "/register", method: http.MethodPost, summary: "Create an account and log in", tag: "account", redirects: true, formFields: []string{"name", "email", "password"}},
	{path: "/login", method: http.MethodGet, summary: "Login form", tag: "account"},
	{path: "/login", method: http.MethodPost, summary: "Log in", tag: "account", redirects: true, formFields: []string{"email", "password"}},
	{path: "/logout", method: http.MethodGet, summary: "Log out", tag: "account", redirects: true},
	{path: "/healthz", method: http.MethodGet, summary: "Health check", tag: "system", contentType: "-"},
}

// 出错时统一返回 {"message": "..."}
var errorSchema = openapi3.NewObjectSchema().
	WithProperty("message", openapi3.NewStringSchema())

// Spec 生成描述所有路由的 OpenAPI 文档
func Spec() *openapi3.T {
	swg := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Blog",
			Description: "Pages answer with a JSON envelope: page, current_user, flashes, errors, data.",
			Version:     "1.0.0",
		},
		Paths: openapi3.NewPaths(),
	}

	for _, r := range routes {
		op := openapi3.NewOperation()
		op.Summary = r.summary
		op.Tags = []string{r.tag}
		op.AddResponse(0, openapi3.NewResponse().
			WithDescription("Error").
			WithJSONSchema(errorSchema))

		if r.postID {
			op.AddParameter(openapi3.NewQueryParameter("post_id").
				WithRequired(true).
				WithSchema(openapi3.NewIntegerSchema().WithMin(1)))
			op.AddResponse(http.StatusNotFound, openapi3.NewResponse().WithDescription("Post not found"))
		}

		if len(r.formFields) > 0 {
			schema := openapi3.NewObjectSchema()
			for _, field := range r.formFields {
				schema.WithProperty(field, openapi3.NewStringSchema())
			}
			schema.Required = r.formFields
			op.RequestBody = &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().WithRequired(true).WithFormDataSchema(schema),
			}
			op.AddResponse(http.StatusBadRequest, openapi3.NewResponse().WithDescription("Validation errors"))
		}

		if r.adminOnly {
			op.AddResponse(http.StatusForbidden, openapi3.NewResponse().WithDescription("Admin only"))
		}

		switch {
		case r.redirects:
			op.AddResponse(http.StatusSeeOther, openapi3.NewResponse().WithDescription("Redirect"))
		case r.contentType == "-":
			op.AddResponse(http.StatusOK, openapi3.NewResponse().WithDescription("OK"))
		case r.contentType != "":
			op.AddResponse(http.StatusOK, openapi3.NewResponse().
				WithDescription("OK").
				WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema().WithFormat("binary"), []string{r.contentType})))
		default:
			op.AddResponse(http.StatusOK, openapi3.NewResponse().
				WithDescription("Page envelope").
				WithJSONSchema(openapi3.NewObjectSchema()))
		}

		item := swg.Paths.Value(r.path)
		if item == nil {
			item = &openapi3.PathItem{}
			swg.Paths.Set(r.path, item)
		}
		item.SetOperation(r.method, op)
	}

	return swg
}
