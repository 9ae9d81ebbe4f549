package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/lifesure/backend/models"
)

// ContentStore covers the independent content collections: reviews, blogs,
// subscriptions and agent applications. Plain create/list, no relationships
// to the policy or booking data.
type ContentStore struct {
	reviews           *mongo.Collection
	blogs             *mongo.Collection
	subscriptions     *mongo.Collection
	agentApplications *mongo.Collection
}

func NewContentStore(reviews, blogs, subscriptions, agentApplications *mongo.Collection) *ContentStore {
	return &ContentStore{
		reviews:           reviews,
		blogs:             blogs,
		subscriptions:     subscriptions,
		agentApplications: agentApplications,
	}
}

func (s *ContentStore) CreateReview(ctx context.Context, review models.Review) (bson.ObjectID, error) {
	return insertOne(ctx, s.reviews, review)
}

func (s *ContentStore) ListReviews(ctx context.Context) ([]models.Review, error) {
	return findAll[models.Review](ctx, s.reviews)
}

func (s *ContentStore) CreateBlog(ctx context.Context, blog models.Blog) (bson.ObjectID, error) {
	return insertOne(ctx, s.blogs, blog)
}

func (s *ContentStore) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return findAll[models.Blog](ctx, s.blogs)
}

// LatestBlogs serves the home page, which only shows the first few posts.
func (s *ContentStore) LatestBlogs(ctx context.Context, limit int) ([]models.Blog, error) {
	return findAll[models.Blog](ctx, s.blogs, options.Find().SetLimit(int64(limit)))
}

func (s *ContentStore) GetBlogByID(ctx context.Context, id bson.ObjectID) (*models.Blog, error) {
	var blog models.Blog
	err := s.blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *ContentStore) CreateSubscription(ctx context.Context, sub models.Subscription) (bson.ObjectID, error) {
	return insertOne(ctx, s.subscriptions, sub)
}

func (s *ContentStore) CreateAgentApplication(ctx context.Context, app models.AgentApplication) (bson.ObjectID, error) {
	return insertOne(ctx, s.agentApplications, app)
}

func (s *ContentStore) ListAgentApplications(ctx context.Context) ([]models.AgentApplication, error) {
	return findAll[models.AgentApplication](ctx, s.agentApplications)
}

func insertOne(ctx context.Context, col *mongo.Collection, doc any) (bson.ObjectID, error) {
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func findAll[T any](ctx context.Context, col *mongo.Collection, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	cursor, err := col.Find(ctx, bson.M{}, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
