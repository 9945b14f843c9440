package service

import (
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Ошибки уровня сервиса пользователей.
var (
	// ErrLoginTaken — логин уже занят другим пользователем.
	ErrLoginTaken = errors.New("login already taken")

	// ErrInvalidCredentials — общий отказ логина: не различаем
	// "нет такого пользователя" и "неверный пароль", чтобы не
	// подсказывать перебор логинов.
	ErrInvalidCredentials = errors.New("username and password not matching")
)

// UserService инкапсулирует регистрацию и проверку учётных данных.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
// Предварительная проверка логина не атомарна со вставкой; гонку
// двух регистраций добивает уникальный индекс в БД.
func (s *UserService) Register(ctx context.Context, login, password string) (*model.User, error) {
	existing, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateUser(ctx, &model.User{Login: login, Password: string(hash)})
}

// Login сверяет пароль с хешем. Любой отказ — ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, login, password string) (*model.User, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
