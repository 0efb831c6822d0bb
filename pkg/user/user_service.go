package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/pkg/jwt"
	"RecipeShare-Backend/pkg/recipe"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	// Mailer delivers operator notifications. Best effort only, a failed
	// send never fails the request that triggered it.
	Mailer interface {
		Send(toEmail string, subject string, body string) error
	}

	UserService interface {
		GetUsers(ctx context.Context, page, limit int) ([]domain.PublicUser, int64, error)
		GetUser(ctx context.Context, userID string) (domain.PublicUser, error)
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.PublicUser, error)
		Login(ctx context.Context, username, password string) (domain.LoginResponse, error)
		DeleteUser(ctx context.Context, userID string, actor domain.Actor) error
		GetUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetUserRecipe(ctx context.Context, userID, recipeID string) (*entities.Recipe, error)
	}

	userService struct {
		userRepository   UserRepository
		recipeRepository recipe.RecipeRepository
		jwtService       jwt.JWTService
		mailer           Mailer
	}
)

func NewUserService(
	userRepository UserRepository,
	recipeRepository recipe.RecipeRepository,
	jwtService jwt.JWTService,
	mailer Mailer,
) UserService {
	return &userService{
		userRepository:   userRepository,
		recipeRepository: recipeRepository,
		jwtService:       jwtService,
		mailer:           mailer,
	}
}

func (s *userService) GetUsers(ctx context.Context, page, limit int) ([]domain.PublicUser, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return domain.ToPublicUsers(users), count, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (domain.PublicUser, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.PublicUser{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PublicUser{}, domain.ErrUserNotFound
		}
		return domain.PublicUser{}, err
	}
	return domain.ToPublicUser(user), nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.PublicUser, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.PublicUser{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PublicUser{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.PublicUser{}, err
	}

	// The admin flag is never taken from the request body.
	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Username: req.Username,
		Password: string(hashed),
		Admin:    false,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.PublicUser{}, domain.ErrUsernameTaken
		}
		return domain.PublicUser{}, err
	}

	s.notifyRegistration(user)

	return domain.ToPublicUser(user), nil
}

func (s *userService) notifyRegistration(user *entities.User) {
	if s.mailer == nil {
		return
	}
	notifyTo := utils.GetConfig("SMTP_AUTH_EMAIL")
	if notifyTo == "" {
		return
	}
	body := fmt.Sprintf("A new user registered: %s (%s)", user.Name, user.Username)
	if err := s.mailer.Send(notifyTo, "New RecipeShare registration", body); err != nil {
		log.Printf("failed to send registration notification: %v", err)
	}
}

func (s *userService) Login(ctx context.Context, username, password string) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrWrongCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.LoginResponse{}, domain.ErrWrongCredentials
	}

	role := domain.RoleUser
	if user.Admin {
		role = domain.RoleAdmin
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), role)
	return domain.LoginResponse{Token: token}, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, actor domain.Actor) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if !actor.CanModify(user.ID) {
		return domain.ErrForbiddenDeleteUser
	}

	return s.userRepository.DeleteUser(ctx, user.ID)
}

func (s *userService) GetUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return s.recipeRepository.GetRecipesByUser(ctx, user.ID)
}

func (s *userService) GetUserRecipe(ctx context.Context, userID, recipeID string) (*entities.Recipe, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	targetRecipe, err := s.recipeRepository.GetRecipeByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if targetRecipe.UserID != user.ID {
		return nil, domain.ErrRecipeNotCreatedByUser
	}

	return targetRecipe, nil
}
