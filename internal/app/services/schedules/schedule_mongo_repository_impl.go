package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleMongoRepository struct {
	client     *mongo.Client
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(client *mongo.Client, dbName string) contracts.ScheduleRepository {
	collection := client.Database(dbName).Collection(constvars.MongoCollectionSchedules)

	// The single-active-schedule invariant is cross-document, so the store
	// enforces it: at most one active document per class/year/semester key.
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "classId", Value: 1},
			{Key: "academicYear", Value: 1},
			{Key: "semester", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"isActive": true}),
	}
	_, err := collection.Indexes().CreateOne(context.TODO(), indexModel)
	if err != nil {
		logrus.Fatalf("Failed to create active-schedule unique index: %s", err.Error())
	}

	return &ScheduleMongoRepository{
		client:     client,
		Collection: collection,
	}
}

func (repo *ScheduleMongoRepository) Insert(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	_, err := repo.Collection.InsertOne(ctx, schedule)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrActiveScheduleExists(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return schedule, nil
}

func (repo *ScheduleMongoRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := repo.Collection.FindOne(ctx, bson.M{"_id": scheduleID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

// Save replaces the document only when the stored version still matches
// expectedVersion, bumping the version on success. A concurrent writer that
// got there first leaves this call with StaleVersion and an untouched store.
func (repo *ScheduleMongoRepository) Save(ctx context.Context, schedule *models.Schedule, expectedVersion int64) (*models.Schedule, error) {
	updated := *schedule
	updated.Version = expectedVersion + 1
	updated.UpdatedAt = time.Now()

	result, err := repo.Collection.ReplaceOne(
		ctx,
		bson.M{"_id": schedule.ID, "version": expectedVersion},
		&updated,
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		existing, err := repo.FindByID(ctx, schedule.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrScheduleNotFound(nil)
		}
		return nil, exceptions.ErrStaleVersion(fmt.Errorf("expected version %d, stored version %d", expectedVersion, existing.Version))
	}
	return &updated, nil
}

func (repo *ScheduleMongoRepository) FindActive(ctx context.Context, classID, academicYear string, semester models.Semester, asOf time.Time) (*models.Schedule, error) {
	asOf = models.TruncateToDay(asOf)
	filter := bson.M{
		"classId":       classID,
		"academicYear":  academicYear,
		"semester":      semester,
		"isActive":      true,
		"effectiveFrom": bson.M{"$lte": asOf},
		"effectiveTo":   bson.M{"$gte": asOf},
	}

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var schedules []models.Schedule
	err = cursor.All(ctx, &schedules)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	if len(schedules) == 0 {
		return nil, nil
	}
	if len(schedules) > 1 {
		return nil, exceptions.ErrDataIntegrity(fmt.Errorf("%d active schedules for class %s %s %s", len(schedules), classID, academicYear, semester))
	}
	return &schedules[0], nil
}

func (repo *ScheduleMongoRepository) FindByTeacher(ctx context.Context, teacherID, academicYear string, semester models.Semester) ([]models.Schedule, error) {
	teacherFilters := make([]bson.M, 0, 7)
	for _, weekday := range models.AllWeekdays() {
		teacherFilters = append(teacherFilters, bson.M{
			fmt.Sprintf("week.%s.slots.teacherId", weekday): teacherID,
		})
	}
	filter := bson.M{
		"academicYear": academicYear,
		"semester":     semester,
		"isActive":     true,
		"$or":          teacherFilters,
	}

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var schedules []models.Schedule
	err = cursor.All(ctx, &schedules)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schedules, nil
}

// Activate flips the target schedule on and every other active schedule for
// the same class/year/semester off inside one transaction, so the
// single-active invariant holds at every point in time.
func (repo *ScheduleMongoRepository) Activate(ctx context.Context, scheduleID string) error {
	session, err := repo.client.StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var target models.Schedule
		err := repo.Collection.FindOne(sc, bson.M{"_id": scheduleID}).Decode(&target)
		if err == mongo.ErrNoDocuments {
			return nil, exceptions.ErrScheduleNotFound(err)
		}
		if err != nil {
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}

		now := time.Now()
		_, err = repo.Collection.UpdateMany(sc,
			bson.M{
				"classId":      target.ClassID,
				"academicYear": target.AcademicYear,
				"semester":     target.Semester,
				"isActive":     true,
				"_id":          bson.M{"$ne": scheduleID},
			},
			bson.M{"$set": bson.M{"isActive": false, "updatedAt": now}},
		)
		if err != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}

		_, err = repo.Collection.UpdateOne(sc,
			bson.M{"_id": scheduleID},
			bson.M{"$set": bson.M{"isActive": true, "updatedAt": now}},
		)
		if err != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		return nil, nil
	})
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return customErr
		}
		return exceptions.ErrMongoDBTransaction(err)
	}
	return nil
}

func (repo *ScheduleMongoRepository) Deactivate(ctx context.Context, scheduleID string) error {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{"_id": scheduleID},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrScheduleNotFound(nil)
	}
	return nil
}
