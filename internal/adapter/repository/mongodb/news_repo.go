package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	newsdomain "github.com/moto-tn/catalog-service/internal/news/domain"
)

const newsCollectionName = "news"

type NewsRepository struct {
	collection *mongo.Collection
}

func NewNewsRepository(client *mongo.Client, dbName string) *NewsRepository {
	return &NewsRepository{
		collection: client.Database(dbName).Collection(newsCollectionName),
	}
}

type newsDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Title     string              `bson:"title"`
	Content   string              `bson:"content"`
	Category  newsdomain.Category `bson:"category"`
	AuthorID  string              `bson:"author_id"`
	ImageURL  string              `bson:"image_url,omitempty"`
	CreatedAt primitive.DateTime  `bson:"created_at"`
	UpdatedAt primitive.DateTime  `bson:"updated_at"`
}

func toNewsDocument(n *newsdomain.News) (*newsDocument, error) {
	doc := &newsDocument{
		Title:     n.Title,
		Content:   n.Content,
		Category:  n.Category,
		AuthorID:  n.AuthorID,
		ImageURL:  n.ImageURL,
		CreatedAt: primitive.NewDateTimeFromTime(n.CreatedAt),
		UpdatedAt: primitive.NewDateTimeFromTime(n.UpdatedAt),
	}
	if n.ID != "" {
		objID, err := primitive.ObjectIDFromHex(n.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid news ID format: %w", err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toDomainNews(doc *newsDocument) *newsdomain.News {
	return &newsdomain.News{
		ID:        doc.ID.Hex(),
		Title:     doc.Title,
		Content:   doc.Content,
		Category:  doc.Category,
		AuthorID:  doc.AuthorID,
		ImageURL:  doc.ImageURL,
		CreatedAt: doc.CreatedAt.Time(),
		UpdatedAt: doc.UpdatedAt.Time(),
	}
}

func (r *NewsRepository) Create(ctx context.Context, news *newsdomain.News) (string, error) {
	doc, err := toNewsDocument(news)
	if err != nil {
		return "", err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("NewsRepository.Create: %w", err)
	}
	return doc.ID.Hex(), nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id string) (*newsdomain.News, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, newsdomain.ErrNewsNotFound
	}
	var doc newsDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, newsdomain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("NewsRepository.GetByID %s: %w", id, err)
	}
	return toDomainNews(&doc), nil
}

func (r *NewsRepository) Update(ctx context.Context, news *newsdomain.News) error {
	doc, err := toNewsDocument(news)
	if err != nil {
		return err
	}
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("NewsRepository.Update %s: %w", news.ID, err)
	}
	if res.MatchedCount == 0 {
		return newsdomain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return newsdomain.ErrNewsNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("NewsRepository.Delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return newsdomain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepository) List(ctx context.Context, page, pageSize int, category newsdomain.Category) ([]*newsdomain.News, int, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("NewsRepository.List: count: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("NewsRepository.List: %w", err)
	}
	var docs []newsDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("NewsRepository.List: decode: %w", err)
	}

	items := make([]*newsdomain.News, 0, len(docs))
	for i := range docs {
		items = append(items, toDomainNews(&docs[i]))
	}
	return items, int(total), nil
}
