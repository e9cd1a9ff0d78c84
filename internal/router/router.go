// internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"knewkarma/internal/handler/http"
	"knewkarma/internal/karma"
)

func NewRouter(e *echo.Echo, svc karma.Service) {
	usr := http.NewUserHandler(svc)
	sub := http.NewSubredditHandler(svc)
	pst := http.NewPostHandler(svc)
	sch := http.NewSearchHandler(svc)
	lst := http.NewPostsHandler(svc)

	e.GET("/user", usr.GetUserActivity)
	e.GET("/user/profile", usr.GetUserProfile)
	e.GET("/user/posts", usr.GetUserPosts)
	e.GET("/user/comments", usr.GetUserComments)
	e.GET("/user/overview", usr.GetUserOverview)

	e.GET("/subreddit", sub.GetSubredditPosts)
	e.GET("/subreddit/profile", sub.GetSubredditProfile)

	e.GET("/post", pst.GetPost)
	e.GET("/posts", lst.GetPosts)
	e.GET("/search", sch.Search)
}
