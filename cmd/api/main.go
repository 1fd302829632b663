package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "approve-hub/internal/adapter/http"
	appmw "approve-hub/internal/adapter/middleware"
	"approve-hub/internal/adapter/repository/mysql"
	"approve-hub/internal/config"
	"approve-hub/internal/domain/approver"
	"approve-hub/internal/domain/group"
	"approve-hub/internal/domain/item"
	"approve-hub/internal/infrastructure/cache"
	"approve-hub/internal/infrastructure/db"
	approveruc "approve-hub/internal/usecase/approver"
	groupuc "approve-hub/internal/usecase/group"
	itemuc "approve-hub/internal/usecase/item"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := gdb.AutoMigrate(&group.Group{}, &approver.Approver{}, &item.Item{}, &item.Check{}, &item.Comment{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	groups := mysql.NewGroupRepository(gdb)
	approvers := mysql.NewApproverRepository(gdb)
	items := mysql.NewItemRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	inactiveWindow := time.Duration(cfg.InactiveDays) * 24 * time.Hour
	groupUsecase := groupuc.NewUsecase(groups, approvers, items, tx, inactiveWindow)
	approverUsecase := approveruc.NewUsecase(groups, approvers, tx)
	itemUsecase := itemuc.NewUsecase(groups, approvers, items, tx)

	h := httpadp.NewHandler()
	gh := httpadp.NewGroupHandler(groupUsecase)
	ah := httpadp.NewApproverHandler(approverUsecase)
	ih := httpadp.NewItemHandler(itemUsecase)
	qh := httpadp.NewQRHandler(groupUsecase, cfg.BaseURL)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/groups", gh.CreateGroup)
	e.PATCH("/groups/:group_id", gh.RenameGroup)
	e.DELETE("/groups/:group_id", gh.DeleteGroup)

	e.GET("/g/:slug", gh.ViewGroup)
	e.GET("/g/:slug/qr.png", qh.ShareQR)

	e.POST("/groups/:group_id/approvers", ah.AddApprover)
	e.PATCH("/approvers/:approver_id", ah.RenameApprover)
	e.DELETE("/approvers/:approver_id", ah.DeleteApprover)

	e.POST("/groups/:group_id/items", ih.CreateItem)
	e.PATCH("/items/:item_id", ih.UpdateItem)
	e.POST("/checks/:check_id/toggle", ih.ToggleCheck)
	e.POST("/items/:item_id/comments", ih.AddComment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
