package main

import (
	"k8s.io/klog/v2"

	"github.com/meloniq-lab/glotline/dao/query"
	"github.com/meloniq-lab/glotline/internal"
	"github.com/meloniq-lab/glotline/internal/handler"
	"github.com/meloniq-lab/glotline/internal/util"
	"github.com/meloniq-lab/glotline/pkg/authz"
	"github.com/meloniq-lab/glotline/pkg/config"
	"github.com/meloniq-lab/glotline/pkg/format"
	"github.com/meloniq-lab/glotline/pkg/store/gormstore"
	"github.com/meloniq-lab/glotline/pkg/warnings"
)

// @title						Glotline API
// @version						1.0.0
// @description					REST API surface over the translation-management data store.
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description					POST /api/v1/auth/login and pass 'Bearer ${TOKEN}' to access protected routes.
func main() {
	conf := config.GetConfig()

	db := query.GetDB()
	if err := query.Migrate(db); err != nil {
		klog.Fatalf("Failed to migrate schema: %s", err)
	}

	stores := gormstore.New(db)
	gate := authz.NewStoreGate(stores.Sets, stores.Permissions)
	formats := format.NewRegistry(
		format.NewJSONParser(),
		format.NewPropertiesParser(),
	)
	tokenMgr := util.NewTokenManager(
		conf.Auth.AccessTokenSecret,
		conf.Auth.RefreshTokenSecret,
		conf.Auth.AccessTokenExpiryHour,
		conf.Auth.RefreshTokenExpiryHour,
	)

	backend := internal.Register(&handler.RegisterConfig{
		Stores:    stores,
		Gate:      gate,
		Formats:   formats,
		Warnings:  warnings.NewBasicChecker(),
		TokenMgr:  tokenMgr,
		UploadDir: conf.Import.UploadDir,
	})

	klog.Infof("Listening on %s", conf.ServerAddr)
	if err := backend.R.Run(conf.ServerAddr); err != nil {
		klog.Fatalf("Server exited: %s", err)
	}
}
