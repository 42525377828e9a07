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

const taskCollection = "tasks"

// TaskRepository implements ports.TaskRepository using MongoDB.
type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(taskCollection)}
}

type mongoTask struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StudentID primitive.ObjectID `bson:"student_id"`
	Name      string             `bson:"name"`
	DueDate   time.Time          `bson:"due_date"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoTask) toDomain() *domain.Task {
	return &domain.Task{
		ID:        m.ID.Hex(),
		StudentID: m.StudentID.Hex(),
		Name:      m.Name,
		DueDate:   m.DueDate.UTC(),
		Status:    domain.TaskStatus(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	owner, err := primitive.ObjectIDFromHex(task.StudentID)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	doc := mongoTask{
		StudentID: owner,
		Name:      task.Name,
		DueDate:   task.DueDate.UTC(),
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: insert task: %v", domain.ErrStoreUnavailable, err)
	}

	created := *task
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	var m mongoTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("%w: find task: %v", domain.ErrStoreUnavailable, err)
	}
	return m.toDomain(), nil
}

// ListByStudent returns the student's tasks sorted by _id ascending, which
// follows ObjectID generation order and so yields insertion order.
func (r *TaskRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.Task, error) {
	owner, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"student_id": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list tasks: %v", domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var tasks []*domain.Task
	for cur.Next(ctx) {
		var m mongoTask
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("%w: decode task: %v", domain.ErrStoreUnavailable, err)
		}
		tasks = append(tasks, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: list tasks: %v", domain.ErrStoreUnavailable, err)
	}
	return tasks, nil
}

// UpdateStatus performs a single conditional write: the task must still be
// owned by studentID and its persisted status must be one of from. A matched
// count of zero means the condition no longer holds.
func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID, studentID string, from []domain.TaskStatus, to domain.TaskStatus) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return false, domain.ErrTaskNotFound
	}
	owner, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return false, domain.ErrForbidden
	}

	sources := make([]string, len(from))
	for i, s := range from {
		sources[i] = string(s)
	}

	filter := bson.M{
		"_id":        oid,
		"student_id": owner,
		"status":     bson.M{"$in": sources},
	}
	update := bson.M{"$set": bson.M{"status": string(to)}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("%w: update task status: %v", domain.ErrStoreUnavailable, err)
	}
	return res.MatchedCount > 0, nil
}

// MarkOverdue persists the due-date derivation for every pending task whose
// due date has passed.
func (r *TaskRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"status":   string(domain.StatusPending),
		"due_date": bson.M{"$lt": now.UTC()},
	}
	update := bson.M{"$set": bson.M{"status": string(domain.StatusOverdue)}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("%w: mark overdue: %v", domain.ErrStoreUnavailable, err)
	}
	return res.ModifiedCount, nil
}

// EnsureIndexes creates the owner index on the tasks collection.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "student_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "due_date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
