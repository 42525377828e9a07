package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusworks/tasktrack/internal/core/domain"
)

const studentCollection = "students"

// StudentRepository implements ports.StudentRepository using MongoDB.
type StudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(studentCollection)}
}

type mongoStudent struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Department   string             `bson:"department"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (m mongoStudent) toDomain() *domain.Student {
	return &domain.Student{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		Email:        m.Email,
		Department:   m.Department,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	doc := mongoStudent{
		Name:         student.Name,
		Email:        student.Email,
		Department:   student.Department,
		PasswordHash: student.PasswordHash,
		CreatedAt:    student.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateStudent
		}
		return nil, fmt.Errorf("%w: insert student: %v", domain.ErrStoreUnavailable, err)
	}

	created := *student
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*domain.Student, error) {
	var m mongoStudent
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("%w: find student by email: %v", domain.ErrStoreUnavailable, err)
	}
	return m.toDomain(), nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	var m mongoStudent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("%w: find student by id: %v", domain.ErrStoreUnavailable, err)
	}
	return m.toDomain(), nil
}

// EnsureIndexes creates the unique email index on the students collection.
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
