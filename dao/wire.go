package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsersDAO,
	NewPostDAO,
	NewActivityDAO,
	NewLikeDAO,
	NewBookmarkDAO,
)
