package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

const gamesCollection = "games"

// GameRepository persists games in the "games" collection. Roster mutations
// touch the participants array and the counter in a single document update so
// the two can never drift apart.
type GameRepository struct {
	coll *mongo.Collection
}

func NewGameRepository(db *mongo.Database) *GameRepository {
	return &GameRepository{coll: db.Collection(gamesCollection)}
}

type mongoGame struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty"`
	Title               string               `bson:"title"`
	Location            string               `bson:"location"`
	Date                string               `bson:"date"`
	Fee                 float64              `bson:"fee"`
	Status              string               `bson:"status"`
	Icon                string               `bson:"icon"`
	Description         string               `bson:"description"`
	MaxParticipants     int                  `bson:"maxParticipants"`
	CurrentParticipants int                  `bson:"currentParticipants"`
	Participants        []domain.Participant `bson:"participants"`
	CreatedAt           time.Time            `bson:"createdAt"`
	UpdatedAt           time.Time            `bson:"updatedAt"`
}

func (mg *mongoGame) toDomain() *domain.Game {
	participants := mg.Participants
	if participants == nil {
		participants = []domain.Participant{}
	}
	return &domain.Game{
		ID:                  mg.ID.Hex(),
		Title:               mg.Title,
		Location:            mg.Location,
		Date:                mg.Date,
		Fee:                 mg.Fee,
		Status:              domain.GameStatus(mg.Status),
		Icon:                mg.Icon,
		Description:         mg.Description,
		MaxParticipants:     mg.MaxParticipants,
		CurrentParticipants: mg.CurrentParticipants,
		Participants:        participants,
		CreatedAt:           mg.CreatedAt.UTC(),
		UpdatedAt:           mg.UpdatedAt.UTC(),
	}
}

func (r *GameRepository) Find(ctx context.Context, filter ports.GameFilter) ([]*domain.Game, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"location": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find games: %w", err)
	}
	defer cur.Close(ctx)

	games := []*domain.Game{}
	for cur.Next(ctx) {
		var mg mongoGame
		if err := cur.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode game: %w", err)
		}
		games = append(games, mg.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find games: %w", err)
	}
	return games, nil
}

func (r *GameRepository) FindByID(ctx context.Context, id string) (*domain.Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGameNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mg mongoGame
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("find game: %w", err)
	}
	return mg.toDomain(), nil
}

func (r *GameRepository) Insert(ctx context.Context, game *domain.Game) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoGame{
		Title:               game.Title,
		Location:            game.Location,
		Date:                game.Date,
		Fee:                 game.Fee,
		Status:              string(game.Status),
		Icon:                game.Icon,
		Description:         game.Description,
		MaxParticipants:     game.MaxParticipants,
		CurrentParticipants: game.CurrentParticipants,
		Participants:        game.Participants,
		CreatedAt:           game.CreatedAt,
		UpdatedAt:           game.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert game: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert game: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *GameRepository) Update(ctx context.Context, id string, game *domain.Game) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGameNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"title":           game.Title,
		"location":        game.Location,
		"date":            game.Date,
		"fee":             game.Fee,
		"status":          string(game.Status),
		"icon":            game.Icon,
		"description":     game.Description,
		"maxParticipants": game.MaxParticipants,
		"updatedAt":       game.UpdatedAt,
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

func (r *GameRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGameNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

// CountByStatus groups games by status with a single aggregation.
func (r *GameRepository) CountByStatus(ctx context.Context) (map[domain.GameStatus]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate game stats: %w", err)
	}
	defer cur.Close(ctx)

	counts := map[domain.GameStatus]int64{}
	for cur.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode game stats: %w", err)
		}
		counts[domain.GameStatus(row.Status)] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("aggregate game stats: %w", err)
	}
	return counts, nil
}

// AddParticipant performs the guarded join update. The filter re-asserts
// non-membership and spare capacity, so the $push/$inc pair only lands when
// the invariants still hold at write time.
func (r *GameRepository) AddParticipant(ctx context.Context, gameID string, p domain.Participant) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(gameID)
	if err != nil {
		return false, domain.ErrGameNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":                oid,
		"participants.userId": bson.M{"$ne": p.UserID},
		"$expr":              bson.M{"$lt": bson.A{"$currentParticipants", "$maxParticipants"}},
	}
	update := bson.M{
		"$push": bson.M{"participants": p},
		"$inc":  bson.M{"currentParticipants": 1},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("join game: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// RemoveParticipant performs the guarded leave update. The membership filter
// keeps the counter from being decremented for users who never joined.
func (r *GameRepository) RemoveParticipant(ctx context.Context, gameID, userID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(gameID)
	if err != nil {
		return false, domain.ErrGameNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":                oid,
		"participants.userId": userID,
	}
	update := bson.M{
		"$pull": bson.M{"participants": bson.M{"userId": userID}},
		"$inc":  bson.M{"currentParticipants": -1},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("leave game: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// EnsureIndexes creates the query indexes for the games collection.
func (r *GameRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
