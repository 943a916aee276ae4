package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"sabor-backend/entity"
	"sabor-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login and the session teardown on logout.
type AuthService struct {
	userRepo  UserStore
	carts     CartStore
	tables    *TableService
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo UserStore, carts CartStore, tables *TableService, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		carts:     carts,
		tables:    tables,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a client account; duplicate emails are rejected.
func (s *AuthService) Register(email, password, name string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Role:     "client",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// Logout tears the session down: the table is released and the (user,
// table) cart scope erased, so nothing stale leaks into the next session.
func (s *AuthService) Logout(userID, tableID uint) {
	if tableID == 0 {
		return
	}
	scope := ScopeKey{UserID: userID, TableID: tableID}
	if err := s.carts.Delete(scope); err != nil {
		log.Printf("logout cart cleanup failed for %s: %v", scope, err)
	}
	if err := s.tables.Release(tableID); err != nil && !errors.Is(err, ErrTableNotFound) {
		log.Printf("logout table release failed for %d: %v", tableID, err)
	}
}
