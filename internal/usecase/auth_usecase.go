package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"careconnect-backend/internal/converter"
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/domain/entity"
	"careconnect-backend/internal/domain/repository"
	"careconnect-backend/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameExists      = errors.New("username already exists")
	ErrStudentIDExists     = errors.New("student ID already registered")
	ErrLicenseExists       = errors.New("license number already registered")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidDepartment   = errors.New("department must be one of SSE, SBA, SSAH")
	ErrMissingStudentField = errors.New("student registration requires student_id, department and major")
	ErrMissingDoctorField  = errors.New("doctor registration requires license_number and specialization")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

const emailDomain = "aui.ma"

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
	nurseRepo  repository.NurseRepository
	jwtService *jwt.JWTService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	nurseRepo repository.NurseRepository,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
		nurseRepo:  nurseRepo,
		jwtService: jwtService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleStudent
	}
	switch role {
	case entity.RoleStudent, entity.RoleDoctor, entity.RoleNurse, entity.RoleAdmin:
	default:
		return nil, ErrInvalidRole
	}

	if role == entity.RoleStudent {
		if req.StudentID == "" || req.Department == "" || req.Major == "" {
			return nil, ErrMissingStudentField
		}
		if !entity.IsValidDepartment(req.Department) {
			return nil, ErrInvalidDepartment
		}
	}
	if role == entity.RoleDoctor && (req.LicenseNumber == "" || req.Specialization == "") {
		return nil, ErrMissingDoctorField
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dob = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Pre-checks give friendly errors; the unique indexes stay the
	// final authority under concurrent registrations.
	existing, err := u.userRepo.FindByUsername(tx, req.Username)
	if err != nil {
		u.log.Warnf("Failed to check username %s: %+v", req.Username, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	studentID := req.StudentID
	if role == entity.RoleDoctor {
		studentID = generateDoctorID()
	}
	if studentID != "" {
		byStudentID, err := u.userRepo.FindByStudentID(tx, studentID)
		if err != nil {
			return nil, err
		}
		if byStudentID != nil {
			return nil, ErrStudentIDExists
		}
	}

	if role == entity.RoleDoctor {
		byLicense, err := u.doctorRepo.FindByLicenseNumber(tx, req.LicenseNumber)
		if err != nil {
			return nil, err
		}
		if byLicense != nil {
			return nil, ErrLicenseExists
		}
	}

	email, err := u.deriveUniqueEmail(tx, req.FullName)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	institution := req.Institution
	if institution == "" {
		institution = "Al Akhawayn University"
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		StudentID:    studentID,
		Institution:  institution,
		Department:   req.Department,
		Major:        req.Major,
		AcademicYear: req.AcademicYear,
		YearLevel:    req.YearLevel,
		Phone:        req.Phone,
		DateOfBirth:  dob,
		Gender:       req.Gender,
		Role:         role,
		IsActive:     true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameExists
		}
		if isDuplicateKeyError(err, "student_id") {
			return nil, ErrStudentIDExists
		}
		u.log.Warnf("Failed to create user %s: %+v", req.Username, err)
		return nil, err
	}

	switch role {
	case entity.RoleDoctor:
		doctor := &entity.Doctor{
			UserID:        &user.ID,
			Name:          req.FullName,
			LicenseNumber: req.LicenseNumber,
			Specialty:     req.Specialization,
			Email:         email,
			Phone:         req.Phone,
			Avatar:        avatarInitials(req.FullName),
			Rating:        decimal.Zero,
			IsAvailable:   true,
		}
		if err := u.doctorRepo.Create(tx, doctor); err != nil {
			if isDuplicateKeyError(err, "license_number") {
				return nil, ErrLicenseExists
			}
			u.log.Warnf("Failed to create doctor row for user %d: %+v", user.ID, err)
			return nil, err
		}
	case entity.RoleNurse:
		nurse := &entity.Nurse{
			UserID:        &user.ID,
			Name:          req.FullName,
			LicenseNumber: req.LicenseNumber,
			Phone:         req.Phone,
		}
		if err := u.nurseRepo.Create(tx, nurse); err != nil {
			u.log.Warnf("Failed to create nurse row for user %d: %+v", user.ID, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit registration: %+v", err)
		return nil, err
	}

	u.log.Infof("User registered: id=%d, username=%s, role=%s", user.ID, user.Username, user.Role)
	return u.issueToken(user)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", req.Username, err)
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueToken(user)
}

func (u *authUsecase) issueToken(user *entity.User) (*dto.TokenResponse, error) {
	token, err := u.jwtService.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token for user %d: %+v", user.ID, err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:        converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) deriveUniqueEmail(tx *gorm.DB, fullName string) (string, error) {
	var lookupErr error
	email := DeriveEmail(fullName, func(candidate string) bool {
		existing, err := u.userRepo.FindByEmail(tx, candidate)
		if err != nil {
			lookupErr = err
			return false
		}
		return existing != nil
	})
	if lookupErr != nil {
		return "", lookupErr
	}
	return email, nil
}

// DeriveEmail builds the institutional address for a full name:
// first-initial.lastname@aui.ma, lowercase. A single-word name uses the
// word alone. When taken reports a collision, numeric suffixes are
// appended to the local part until a free address is found.
func DeriveEmail(fullName string, taken func(string) bool) string {
	parts := strings.Fields(strings.ToLower(fullName))

	var local string
	switch {
	case len(parts) == 0:
		local = "user"
	case len(parts) == 1:
		local = sanitizeLocalPart(parts[0])
	default:
		local = sanitizeLocalPart(string([]rune(parts[0])[0])) + "." + sanitizeLocalPart(parts[len(parts)-1])
	}

	email := local + "@" + emailDomain
	for suffix := 1; taken(email); suffix++ {
		email = fmt.Sprintf("%s%d@%s", local, suffix, emailDomain)
	}
	return email
}

func sanitizeLocalPart(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}

// avatarInitials takes the first letter of up to two name words.
func avatarInitials(fullName string) string {
	parts := strings.Fields(fullName)
	var b strings.Builder
	for i, part := range parts {
		if i >= 2 {
			break
		}
		b.WriteString(strings.ToUpper(string([]rune(part)[0])))
	}
	return b.String()
}

// generateDoctorID fabricates the internal "D"-prefixed staff ID for
// registering doctors, mirroring the student ID format.
func generateDoctorID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000000))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; fall back to a timestamp-derived value.
		return fmt.Sprintf("D%07d", time.Now().UnixNano()%10000000)
	}
	return fmt.Sprintf("D%07d", n.Int64())
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
