package comments

import (
	"context"
	"errors"
	"testing"

	"Agora/internal/core/identity"
	"Agora/internal/core/posts"
	"Agora/internal/core/votes"
)

// fakeCommentRepo is an in-memory Repository for service tests
type fakeCommentRepo struct {
	comments []*Comment
	nextID   int64
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, id int64) (*Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrCommentNotFound
}

func (f *fakeCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	var out []*Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *Comment) error {
	f.nextID++
	comment.ID = f.nextID
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepo) AdjustScore(ctx context.Context, id int64, delta int) error {
	for _, c := range f.comments {
		if c.ID == id {
			c.Score += delta
			return nil
		}
	}
	return ErrWriteFailed
}

func (f *fakeCommentRepo) DeleteOwned(ctx context.Context, id int64, author string) (bool, error) {
	for i, c := range f.comments {
		if c.ID == id && c.Author == author {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeLedger is an in-memory votes.Ledger with the real toggle semantics
type fakeLedger struct {
	entries    map[int64]map[string]votes.Direction
	purgeCalls []int64
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{entries: make(map[int64]map[string]votes.Direction)}
}

func (l *fakeLedger) RecordOrUpdate(ctx context.Context, commentID int64, username string, direction votes.Direction) (int, error) {
	byUser := l.entries[commentID]
	if byUser == nil {
		byUser = make(map[string]votes.Direction)
		l.entries[commentID] = byUser
	}

	prior, voted := byUser[username]
	if !voted {
		byUser[username] = direction
		return direction.Weight(), nil
	}
	if prior == direction {
		return 0, nil
	}
	byUser[username] = direction
	return 2 * direction.Weight(), nil
}

func (l *fakeLedger) Purge(ctx context.Context, commentID int64) error {
	l.purgeCalls = append(l.purgeCalls, commentID)
	delete(l.entries, commentID)
	return nil
}

// mockPostRepo implements posts.Repository with a fixed post
type mockPostRepo struct {
	getFunc func(ctx context.Context, id int64) (*posts.Post, error)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &posts.Post{ID: id, ForumID: "F1", Title: "t", Author: "alice"}, nil
}

func (m *mockPostRepo) ListByForum(ctx context.Context, forumID string) ([]*posts.Post, error) {
	return nil, nil
}
func (m *mockPostRepo) Create(ctx context.Context, post *posts.Post) error { return nil }
func (m *mockPostRepo) Delete(ctx context.Context, forumID string, postID int64) error {
	return nil
}

func newTestService(repo *fakeCommentRepo, ledger *fakeLedger) Service {
	return NewCommentService(repo, &mockPostRepo{}, ledger, nil)
}

func TestSubmit_RequiresSignedIn(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := newTestService(repo, newFakeLedger())

	_, err := svc.Submit(context.Background(), 1, nil, "hello")
	if !errors.Is(err, identity.ErrNotSignedIn) {
		t.Errorf("Expected ErrNotSignedIn, got %v", err)
	}
	if len(repo.comments) != 0 {
		t.Error("Anonymous submit must not mutate the store")
	}
}

func TestSubmit_PostMissing(t *testing.T) {
	postRepo := &mockPostRepo{
		getFunc: func(ctx context.Context, id int64) (*posts.Post, error) {
			return nil, posts.ErrPostNotFound
		},
	}
	svc := NewCommentService(&fakeCommentRepo{}, postRepo, newFakeLedger(), nil)

	_, err := svc.Submit(context.Background(), 99, &identity.Principal{Username: "alice"}, "hello")
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Expected ErrPostNotFound, got %v", err)
	}
}

func TestSubmit_AppendsInOrder(t *testing.T) {
	svc := newTestService(&fakeCommentRepo{}, newFakeLedger())
	ctx := context.Background()
	alice := &identity.Principal{Username: "alice"}

	thread, err := svc.Submit(ctx, 1, alice, "first")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(thread.Comments) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(thread.Comments))
	}

	thread, err = svc.Submit(ctx, 1, alice, "second")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(thread.Comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(thread.Comments))
	}
	if thread.Comments[0].Content != "first" || thread.Comments[1].Content != "second" {
		t.Error("Comments not in creation order")
	}

	fresh := thread.Comments[1]
	if fresh.Score != 0 {
		t.Errorf("New comment should have zero tally, got %d", fresh.Score)
	}
	if fresh.Author != "alice" {
		t.Errorf("Expected author alice, got %s", fresh.Author)
	}
}

func TestSubmit_RejectsBlankContent(t *testing.T) {
	svc := newTestService(&fakeCommentRepo{}, newFakeLedger())

	_, err := svc.Submit(context.Background(), 1, &identity.Principal{Username: "alice"}, "   ")
	if !errors.Is(err, ErrContentEmpty) {
		t.Errorf("Expected ErrContentEmpty, got %v", err)
	}
}

// Concrete scenario: tally 0 → up → 1, up again → still 1, down → -1.
func TestVote_ToggleScenario(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := newTestService(repo, newFakeLedger())
	ctx := context.Background()

	thread, err := svc.Submit(ctx, 1, &identity.Principal{Username: "bob"}, "c1")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	c1 := thread.Comments[0].ID

	score := func() int {
		c, err := repo.GetByID(ctx, c1)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		return c.Score
	}

	if err := svc.Vote(ctx, c1, "alice", votes.DirectionUp); err != nil {
		t.Fatalf("Vote up failed: %v", err)
	}
	if got := score(); got != 1 {
		t.Errorf("After up: tally = %d, want 1", got)
	}

	// Idempotent re-vote
	if err := svc.Vote(ctx, c1, "alice", votes.DirectionUp); err != nil {
		t.Fatalf("Repeat vote failed: %v", err)
	}
	if got := score(); got != 1 {
		t.Errorf("After repeated up: tally = %d, want 1", got)
	}

	// Direction flip moves the tally by 2
	if err := svc.Vote(ctx, c1, "alice", votes.DirectionDown); err != nil {
		t.Fatalf("Flip vote failed: %v", err)
	}
	if got := score(); got != -1 {
		t.Errorf("After flip to down: tally = %d, want -1", got)
	}
}

func TestVote_IndependentVoters(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := newTestService(repo, newFakeLedger())
	ctx := context.Background()

	thread, _ := svc.Submit(ctx, 1, &identity.Principal{Username: "bob"}, "c1")
	c1 := thread.Comments[0].ID

	_ = svc.Vote(ctx, c1, "alice", votes.DirectionUp)
	_ = svc.Vote(ctx, c1, "carol", votes.DirectionUp)
	_ = svc.Vote(ctx, c1, "dave", votes.DirectionDown)

	c, _ := repo.GetByID(ctx, c1)
	if c.Score != 1 {
		t.Errorf("Expected tally 1 from two ups and one down, got %d", c.Score)
	}
}

func TestVote_CommentMissing(t *testing.T) {
	svc := newTestService(&fakeCommentRepo{}, newFakeLedger())

	err := svc.Vote(context.Background(), 404, "alice", votes.DirectionUp)
	if !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("Expected ErrCommentNotFound, got %v", err)
	}
}

func TestVote_RejectsEmptyVoterAndBadDirection(t *testing.T) {
	svc := newTestService(&fakeCommentRepo{}, newFakeLedger())

	if err := svc.Vote(context.Background(), 1, "", votes.DirectionUp); !errors.Is(err, votes.ErrMissingVoter) {
		t.Errorf("Expected ErrMissingVoter, got %v", err)
	}
	if err := svc.Vote(context.Background(), 1, "alice", votes.Direction("sideways")); !errors.Is(err, votes.ErrInvalidDirection) {
		t.Errorf("Expected ErrInvalidDirection, got %v", err)
	}
}

func TestDelete_CollapsesNotFoundAndNotAuthor(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := newTestService(repo, newFakeLedger())
	ctx := context.Background()

	thread, _ := svc.Submit(ctx, 1, &identity.Principal{Username: "alice"}, "mine")
	c1 := thread.Comments[0].ID

	// Wrong author and missing comment produce the same outcome
	errWrongAuthor := svc.Delete(ctx, c1, &identity.Principal{Username: "bob"})
	errMissing := svc.Delete(ctx, 9999, &identity.Principal{Username: "bob"})

	if !errors.Is(errWrongAuthor, ErrNotAuthor) {
		t.Errorf("Expected ErrNotAuthor for wrong author, got %v", errWrongAuthor)
	}
	if !errors.Is(errMissing, ErrNotAuthor) {
		t.Errorf("Expected ErrNotAuthor for missing comment, got %v", errMissing)
	}
	if len(repo.comments) != 1 {
		t.Error("Failed delete must not mutate the store")
	}
}

func TestDelete_PurgesLedger(t *testing.T) {
	repo := &fakeCommentRepo{}
	ledger := newFakeLedger()
	svc := newTestService(repo, ledger)
	ctx := context.Background()
	alice := &identity.Principal{Username: "alice"}

	thread, _ := svc.Submit(ctx, 1, alice, "mine")
	c1 := thread.Comments[0].ID

	_ = svc.Vote(ctx, c1, "bob", votes.DirectionUp)

	if err := svc.Delete(ctx, c1, alice); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if len(ledger.purgeCalls) != 1 || ledger.purgeCalls[0] != c1 {
		t.Errorf("Expected ledger purge for comment %d, got %v", c1, ledger.purgeCalls)
	}
	if len(ledger.entries[c1]) != 0 {
		t.Error("Ledger entries should be gone after delete")
	}
}

func TestDelete_RequiresSignedIn(t *testing.T) {
	svc := newTestService(&fakeCommentRepo{}, newFakeLedger())

	err := svc.Delete(context.Background(), 1, nil)
	if !errors.Is(err, identity.ErrNotSignedIn) {
		t.Errorf("Expected ErrNotSignedIn, got %v", err)
	}
}
