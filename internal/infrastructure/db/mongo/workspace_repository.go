package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

const (
	projectCollection = "projects"
	ticketCollection  = "tickets"
)

type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectCollection)}
}

type mongoProject struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Description       string             `bson:"description,omitempty"`
	Status            string             `bson:"status"`
	AssignedEmployees []string           `bson:"assigned_employees"`
	CreatedAt         int64              `bson:"created_at"`
}

func (r *MongoProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []*domain.Project
	for cur.Next(ctx) {
		var mp mongoProject
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, &domain.Project{
			ID:                mp.ID.Hex(),
			Name:              mp.Name,
			Description:       mp.Description,
			Status:            mp.Status,
			AssignedEmployees: mp.AssignedEmployees,
			CreatedAt:         unixToTime(mp.CreatedAt),
		})
	}
	return projects, cur.Err()
}

func (r *MongoProjectRepository) RemoveAssignee(ctx context.Context, employeeID string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"assigned_employees": employeeID},
		bson.M{"$pull": bson.M{"assigned_employees": employeeID}},
	)
	if err != nil {
		return fmt.Errorf("remove project assignee: %w", err)
	}
	return nil
}

type MongoTicketRepository struct {
	coll *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) *MongoTicketRepository {
	return &MongoTicketRepository{coll: db.Collection(ticketCollection)}
}

type mongoTicket struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Subject    string             `bson:"subject"`
	Status     string             `bson:"status"`
	CustomerID string             `bson:"customer_id,omitempty"`
	AssignedTo string             `bson:"assigned_to,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
}

func (r *MongoTicketRepository) List(ctx context.Context) ([]*domain.Ticket, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer cur.Close(ctx)

	var tickets []*domain.Ticket
	for cur.Next(ctx) {
		var mt mongoTicket
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode ticket: %w", err)
		}
		tickets = append(tickets, &domain.Ticket{
			ID:         mt.ID.Hex(),
			Subject:    mt.Subject,
			Status:     mt.Status,
			CustomerID: mt.CustomerID,
			AssignedTo: mt.AssignedTo,
			CreatedAt:  unixToTime(mt.CreatedAt),
		})
	}
	return tickets, cur.Err()
}

func (r *MongoTicketRepository) ClearAssignee(ctx context.Context, employeeID string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"assigned_to": employeeID},
		bson.M{"$unset": bson.M{"assigned_to": ""}},
	)
	if err != nil {
		return fmt.Errorf("clear ticket assignee: %w", err)
	}
	return nil
}
