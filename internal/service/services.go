package service

import (
	"github.com/prembandhan/matchclient/internal/adapter"
	"github.com/prembandhan/matchclient/internal/cache"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/session"
	"github.com/prembandhan/matchclient/internal/store"
)

type Services struct {
	BrowseService    BrowseService
	FeaturedService  FeaturedService
	LikeService      LikeService
	FavoritesService FavoritesService
	RefreshJob       RefreshJob
}

func NewServices(source adapter.ProfileSource, sess session.Session, resultCache cache.ResultCache, storages *store.Storages, log *logger.Logger) *Services {
	featuredSvc := NewFeaturedService(source, resultCache, log)

	return &Services{
		BrowseService:    NewBrowseService(source, sess, log),
		FeaturedService:  featuredSvc,
		LikeService:      NewLikeService(source, sess, storages.Favorites, log),
		FavoritesService: NewFavoritesService(storages.Favorites, log),
		RefreshJob:       NewRefreshJob(featuredSvc),
	}
}
