package server

import (
	"Pulse/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Post     *handler.Post
	Activity *handler.Activity
	Like     *handler.Like
	Bookmark *handler.Bookmark
}
