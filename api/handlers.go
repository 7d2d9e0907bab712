package api

import (
	"github.com/blockwavenation/gtn-backend/config"
	"github.com/blockwavenation/gtn-backend/database"
	"github.com/blockwavenation/gtn-backend/services"
	"github.com/blockwavenation/gtn-backend/session"
	"github.com/blockwavenation/gtn-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, sessions session.Store, media *storage.MediaStore, c map[string]string) *routeHandlers {
	credentials := session.Credentials{
		User:     config.GetString(c, "ADMIN_USER", "admin"),
		Pass:     config.GetString(c, "ADMIN_PASS", "admin@123"),
		PassHash: config.GetString(c, "ADMIN_PASS_HASH", ""),
	}

	backupService := services.NewBackupService(db, media)

	return &routeHandlers{
		healthHandler:  newHealthHandler(db),
		authHandler:    newAuthHandler(sessions, credentials),
		projectHandler: newProjectHandler(db.ProjectRepo()),
		eventHandler:   newEventHandler(db.EventRepo()),
		newsHandler:    newNewsHandler(db.NewsRepo()),
		blogHandler:    newBlogHandler(db.BlogRepo()),
		joinHandler:    newJoinHandler(db.JoinRequestRepo()),
		uploadHandler:  newUploadHandler(media),
		backupHandler:  newBackupHandler(backupService),
	}
}
