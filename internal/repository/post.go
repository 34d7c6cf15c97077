package repository

import (
	"context"
	"fmt"

	"valorhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PostRepository defines the interface for post data operations. Replies are
// embedded in their parent post and only reachable through this interface.
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	// Delete removes the post with the given id and reports how many
	// documents were removed (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
	// AppendReply pushes a reply onto the matching post's replies array and
	// reports how many posts matched (0 or 1).
	AppendReply(ctx context.Context, postID int64, reply *models.Reply) (int64, error)
	// RemoveReply pulls the reply with the given id out of the matching
	// post's replies array. The returned count reflects whether the POST
	// matched, not whether a reply was actually removed: pulling a missing
	// reply from an existing post succeeds with a match count of 1.
	RemoveReply(ctx context.Context, postID, replyID int64) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	col *mongo.Collection
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{col: db.Collection("posts")}
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	return normalizeReplies(posts), nil
}

// normalizeReplies substitutes empty slices for nil ones so the API always
// serves arrays. Documents written before the replies field existed decode
// with a nil slice.
func normalizeReplies(posts []models.Post) []models.Post {
	if posts == nil {
		return []models.Post{}
	}
	for i := range posts {
		if posts[i].Replies == nil {
			posts[i].Replies = []models.Reply{}
		}
	}
	return posts
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if _, err := r.col.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, fmt.Errorf("delete post: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *postRepository) AppendReply(ctx context.Context, postID int64, reply *models.Reply) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": postID},
		bson.M{"$push": bson.M{"replies": reply}},
	)
	if err != nil {
		return 0, fmt.Errorf("append reply: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *postRepository) RemoveReply(ctx context.Context, postID, replyID int64) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": postID},
		bson.M{"$pull": bson.M{"replies": bson.M{"id": replyID}}},
	)
	if err != nil {
		return 0, fmt.Errorf("remove reply: %w", err)
	}
	return res.MatchedCount, nil
}
