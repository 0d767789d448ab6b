package userController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"sciventure/config"
	"sciventure/middleware"
	"sciventure/models"
	"sciventure/storage"
	userValidator "sciventure/validators/user"
)

// Controller serves the user endpoints.
type Controller struct {
	Store storage.Storage
}

func New(store storage.Storage) *Controller {
	return &Controller{Store: store}
}

// GetUser returns a single user. The password hash never leaves the
// server because of the model's json tag.
func (ctl *Controller) GetUser(c *fiber.Ctx) error {
	id, ok := c.Locals("userID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	user, err := ctl.Store.GetUser(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("[USER] failed to fetch user %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
}

// CreateUser registers a new learner account.
func (ctl *Controller) CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("[USER] failed to hash password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	user := &models.User{
		Username:  reqData.Username,
		Password:  string(hashed),
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Language:  reqData.Language,
	}

	if err := ctl.Store.CreateUser(user); err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username already exists!", nil)
		}
		log.Printf("[USER] failed to create user %q: %v", reqData.Username, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", user)
}
