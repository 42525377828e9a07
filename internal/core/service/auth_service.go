package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusworks/tasktrack/internal/api/metrics"
	"github.com/campusworks/tasktrack/internal/core/domain"
	"github.com/campusworks/tasktrack/internal/core/ports"
	"github.com/campusworks/tasktrack/internal/core/token"
)

// dummyHash is compared against when the email is unknown so that a student
// login costs one bcrypt verification regardless of account existence.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("tasktrack-dummy"), bcrypt.DefaultCost)

// AdminCredential is the single out-of-band administrator identity. It is
// process configuration, never stored alongside student credentials.
type AdminCredential struct {
	Email    string
	Password string
}

// AuthService implements both login flows and student provisioning.
type AuthService struct {
	students ports.StudentRepository
	codec    *token.Codec
	admin    AdminCredential
	log      zerolog.Logger
}

func NewAuthService(students ports.StudentRepository, codec *token.Codec, admin AdminCredential, log zerolog.Logger) *AuthService {
	return &AuthService{students: students, codec: codec, admin: admin, log: log}
}

// credentialDigest fixes the compared length so neither the comparison time
// nor a length mismatch leaks anything about the configured credential.
func credentialDigest(s string) []byte {
	d := sha256.Sum256([]byte(s))
	return d[:]
}

// AdminLogin checks the configured credential pair in constant time and
// issues an administrator token. The error never says which field mismatched.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare(credentialDigest(email), credentialDigest(s.admin.Email))
	passOK := subtle.ConstantTimeCompare(credentialDigest(password), credentialDigest(s.admin.Password))
	if emailOK&passOK != 1 {
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleAdmin), "failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(domain.AdminPrincipal())
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.RoleAdmin), "success").Inc()
	s.log.Info().Msg("admin logged in")
	return tok, nil
}

// StudentLogin looks the student up by email and verifies the credential.
// Unknown email and wrong password fail identically.
func (s *AuthService) StudentLogin(ctx context.Context, email, password string) (string, error) {
	hash := dummyHash
	student, err := s.students.FindByEmail(ctx, email)
	switch {
	case err == nil:
		hash = []byte(student.PasswordHash)
	case errors.Is(err, domain.ErrStudentNotFound):
		// keep going with the dummy hash
	default:
		return "", err
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil || student == nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleStudent), "failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(domain.StudentPrincipal(student.ID))
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.RoleStudent), "success").Inc()
	s.log.Info().Str("student_id", student.ID).Msg("student logged in")
	return tok, nil
}

// RegisterStudent hashes the password and persists a new roster member.
func (s *AuthService) RegisterStudent(ctx context.Context, input ports.RegisterStudentInput) (*domain.Student, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	student := &domain.Student{
		Name:         input.Name,
		Email:        input.Email,
		Department:   input.Department,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.students.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	metrics.StudentsCreatedTotal.Inc()
	s.log.Info().Str("student_id", created.ID).Str("department", created.Department).Msg("student added")
	return created, nil
}
