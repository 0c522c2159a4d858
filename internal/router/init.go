package router

import (
	userapp "github.com/pradiptara/devconnect/internal/application"
	"github.com/pradiptara/devconnect/internal/container"
	repouser "github.com/pradiptara/devconnect/internal/domain/repository"
	pginfra "github.com/pradiptara/devconnect/internal/infrastructure/postgres"
	handlers "github.com/pradiptara/devconnect/internal/interface/http"
	"github.com/pradiptara/devconnect/internal/router/modules"
	"github.com/pradiptara/devconnect/pkg/gravatar"
	"github.com/pradiptara/devconnect/pkg/helpers"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := userapp.NewService(
		repo,
		helpers.BcryptHasher{Cost: cfg.BcryptCost},
		container.GetJWT(),
		gravatar.Options{
			Size:    cfg.AvatarSize,
			Rating:  cfg.AvatarRating,
			Default: cfg.AvatarDefault,
		},
		container.GetRedis(),
		container.GetRabbitPub(),
		container.GetES(),
		cfg.ESUsersIndex,
		container.GetLogger(),
		cfg.MailSendEnabled,
	)

	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))
}
