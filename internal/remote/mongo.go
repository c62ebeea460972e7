package remote

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saveup-app/saveup/internal/model"
)

// MongoStore is the self-hosted alternative to the hosted backend: a
// user_profiles collection keyed by user_id.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB and binds the user_profiles collection.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("remote: connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("remote: pinging mongodb: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(dbName).Collection("user_profiles"),
	}, nil
}

// Close disconnects from MongoDB.
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// UpdateStats overwrites the aggregate stat columns for the given user,
// creating the profile document if it does not exist yet.
func (m *MongoStore) UpdateStats(ctx context.Context, userID string, stats model.DecisionStats) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{
		"total_money_saved":  stats.TotalMoneySaved,
		"total_hours_saved":  stats.TotalHoursSaved,
		"total_decisions":    stats.TotalDecisions,
		"buy_count":          stats.BuyCount,
		"dont_buy_count":     stats.DontBuyCount,
		"save_count":         stats.SaveCount,
		"let_me_think_count": stats.LetMeThinkCount,
	}}

	_, err := m.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("remote: updating stats: %w", err)
	}
	return nil
}

// FetchProfile returns the profile document for the given user.
func (m *MongoStore) FetchProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	var doc struct {
		UserID              string  `bson:"user_id"`
		SalaryAmount        float64 `bson:"salary_amount"`
		SalaryType          string  `bson:"salary_type"`
		HourlyWage          float64 `bson:"hourly_wage"`
		Currency            string  `bson:"currency"`
		Region              string  `bson:"region"`
		QuestionnaireScore  int     `bson:"questionnaire_score"`
		OnboardingCompleted bool    `bson:"onboarding_completed"`
		TotalMoneySaved     float64 `bson:"total_money_saved"`
		TotalHoursSaved     float64 `bson:"total_hours_saved"`
		TotalDecisions      int     `bson:"total_decisions"`
		BuyCount            int     `bson:"buy_count"`
		DontBuyCount        int     `bson:"dont_buy_count"`
		SaveCount           int     `bson:"save_count"`
		LetMeThinkCount     int     `bson:"let_me_think_count"`
	}

	err := m.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("remote: fetching profile: %w", err)
	}

	return &model.UserProfile{
		UserID:              doc.UserID,
		SalaryAmount:        doc.SalaryAmount,
		SalaryType:          model.SalaryType(doc.SalaryType),
		HourlyWage:          doc.HourlyWage,
		Currency:            doc.Currency,
		Region:              doc.Region,
		QuestionnaireScore:  doc.QuestionnaireScore,
		OnboardingCompleted: doc.OnboardingCompleted,
		TotalMoneySaved:     doc.TotalMoneySaved,
		TotalHoursSaved:     doc.TotalHoursSaved,
		TotalDecisions:      doc.TotalDecisions,
		BuyCount:            doc.BuyCount,
		DontBuyCount:        doc.DontBuyCount,
		SaveCount:           doc.SaveCount,
		LetMeThinkCount:     doc.LetMeThinkCount,
	}, nil
}

// UpsertProfile creates or updates the onboarding-owned profile fields,
// leaving the stat columns untouched.
func (m *MongoStore) UpsertProfile(ctx context.Context, p model.UserProfile) error {
	filter := bson.M{"user_id": p.UserID}
	update := bson.M{"$set": bson.M{
		"salary_amount":        p.SalaryAmount,
		"salary_type":          string(p.SalaryType),
		"hourly_wage":          p.HourlyWage,
		"currency":             p.Currency,
		"region":               p.Region,
		"questionnaire_score":  p.QuestionnaireScore,
		"onboarding_completed": p.OnboardingCompleted,
	}}

	_, err := m.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("remote: upserting profile: %w", err)
	}
	return nil
}
