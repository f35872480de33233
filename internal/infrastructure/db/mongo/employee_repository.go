package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

const employeeCollection = "employees"

type MongoEmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{coll: db.Collection(employeeCollection)}
}

type mongoEmployee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	Email      string             `bson:"email"`
	Name       string             `bson:"name"`
	Position   string             `bson:"position,omitempty"`
	Department string             `bson:"department,omitempty"`
	HireDate   int64              `bson:"hire_date,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	doc := mongoEmployee{
		UserID:     employee.UserID,
		Email:      employee.Email,
		Name:       employee.Name,
		Position:   employee.Position,
		Department: employee.Department,
		CreatedAt:  employee.CreatedAt.Unix(),
	}
	if !employee.HireDate.IsZero() {
		doc.HireDate = employee.HireDate.Unix()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmployeeExists
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *employee
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoEmployeeRepository) FindByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *MongoEmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)

	var employees []*domain.Employee
	for cur.Next(ctx) {
		var me mongoEmployee
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		employees = append(employees, toEmployee(me))
	}
	return employees, cur.Err()
}

func (r *MongoEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	oid, err := primitive.ObjectIDFromHex(employee.ID)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":       employee.Name,
		"position":   employee.Position,
		"department": employee.Department,
	}})
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *MongoEmployeeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Employee, error) {
	var me mongoEmployee
	if err := r.coll.FindOne(ctx, filter).Decode(&me); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return toEmployee(me), nil
}

func toEmployee(me mongoEmployee) *domain.Employee {
	return &domain.Employee{
		ID:         me.ID.Hex(),
		UserID:     me.UserID,
		Email:      me.Email,
		Name:       me.Name,
		Position:   me.Position,
		Department: me.Department,
		HireDate:   unixToTime(me.HireDate),
		CreatedAt:  unixToTime(me.CreatedAt),
	}
}
