package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
	"github.com/sbilibin2017/gw-talent-map/internal/tokens"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// ProfileSaver inserts new profiles.
type ProfileSaver interface {
	Save(ctx context.Context, profile *models.ProfileDB) error
}

// Transactor runs fn atomically.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	profiles    ProfileSaver
	tx          Transactor
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
	validator   *Validator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	profiles ProfileSaver,
	tx Transactor,
	jwt JWTGenerator,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		profiles:    profiles,
		tx:          tx,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
		validator:   NewValidator(),
	}
}

// Register creates an account and its profile atomically and signs the new account in.
func (svc *AuthService) Register(ctx context.Context, reg models.Registration) (*models.RegistrationResult, error) {
	reg = normalizeRegistration(reg)

	if errs := svc.validator.validateRegistration(reg); errs != nil {
		logger.Log.Errorw("invalid registration", "username", reg.Username, "errors", errs)
		return nil, errs
	}

	existing, err := svc.reader.GetByUsername(ctx, reg.Username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("username already taken", "username", reg.Username)
		return nil, apperrors.NewConflict(apperrors.ConflictUsername)
	}

	existing, err = svc.reader.GetByEmail(ctx, reg.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already in use", "email", reg.Email)
		return nil, apperrors.NewConflict(apperrors.ConflictEmail)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     reg.Username,
		Email:        reg.Email,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		PasswordHash: string(hashedPassword),
	}
	profile := profileFromFields(user.UserID, reg.Profile)

	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.writer.Save(ctx, user); err != nil {
			return err
		}
		return svc.profiles.Save(ctx, profile)
	})
	if err != nil {
		// A concurrent registration may win the unique index after the pre-check.
		logger.Log.Errorw("failed to save registration", "username", reg.Username, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent(models.EventAccountRegistered, user.UserID, map[string]string{
		"username":   user.Username,
		"profile_id": strconv.FormatInt(profile.ProfileID, 10),
	}))

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &models.RegistrationResult{
		AccountID: user.UserID,
		ProfileID: profile.ProfileID,
		Token:     token,
	}, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

func normalizeRegistration(reg models.Registration) models.Registration {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)
	reg.Profile = normalizeProfileFields(reg.Profile)
	return reg
}

func normalizeProfileFields(f models.ProfileFields) models.ProfileFields {
	f.EducationLevel = strings.TrimSpace(f.EducationLevel)
	f.Bio = strings.TrimSpace(f.Bio)
	f.LinkedIn = strings.TrimSpace(f.LinkedIn)
	f.GitHub = strings.TrimSpace(f.GitHub)
	f.YouTube = strings.TrimSpace(f.YouTube)
	f.Website = strings.TrimSpace(f.Website)
	return f
}

// profileFromFields builds the storage row of validated registration fields
func profileFromFields(userID uuid.UUID, f models.ProfileFields) *models.ProfileDB {
	level := models.DefaultEducationLevel
	if parsed, err := models.ParseEducationLevel(f.EducationLevel); err == nil {
		level = parsed
	}
	return &models.ProfileDB{
		UserID:         userID,
		EducationLevel: level,
		Bio:            f.Bio,
		Skills:         tokens.Join(f.Skills),
		Languages:      tokens.Join(f.Languages),
		Passions:       tokens.Join(f.Passions),
		Projects:       tokens.Join(f.Projects),
		LinkedIn:       f.LinkedIn,
		GitHub:         f.GitHub,
		YouTube:        f.YouTube,
		Website:        f.Website,
	}
}
