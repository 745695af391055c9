package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(idStr))
}

// Question set operations

func (s *Storage) SaveQuestionSet(ctx context.Context, set *model.QuestionSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, questionSetKey(set.ID), data, 0)
	if set.OwnerID != "" {
		pipe.SAdd(ctx, setsForOwnerIndexKey(set.OwnerID), string(set.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetQuestionSet(ctx context.Context, id model.QuestionSetID) (*model.QuestionSet, error) {
	data, err := s.client.Get(ctx, questionSetKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrQuestionSetNotFound
		}
		return nil, err
	}

	var set model.QuestionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *Storage) GetQuestionSetsForOwner(ctx context.Context, owner model.UserID) ([]*model.QuestionSet, error) {
	ids, err := s.client.SMembers(ctx, setsForOwnerIndexKey(owner)).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = questionSetKey(model.QuestionSetID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	sets := make([]*model.QuestionSet, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Deleted between SMEMBERS and MGET
		}
		var set model.QuestionSet
		if err := json.Unmarshal([]byte(val.(string)), &set); err != nil {
			continue // Skip invalid data
		}
		sets = append(sets, &set)
	}

	return sets, nil
}

func (s *Storage) DeleteQuestionSet(ctx context.Context, id model.QuestionSetID) error {
	// Need the owner to clean up the index
	set, err := s.GetQuestionSet(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrQuestionSetNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, questionSetKey(id))
	if set.OwnerID != "" {
		pipe.SRem(ctx, setsForOwnerIndexKey(set.OwnerID), string(id))
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Session operations

func (s *Storage) CreateSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// SETNX on the room code index is the atomic claim: exactly one
	// concurrent creation wins the code, losers redraw and retry.
	claimed, err := s.client.SetNX(ctx, roomCodeIndexKey(session.RoomCode), string(session.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrRoomCodeTaken
	}

	return s.client.Set(ctx, sessionKey(session.ID), data, 0).Err()
}

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(session.ID), data, 0).Err()
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) GetSessionByRoomCode(ctx context.Context, code model.RoomCode) (*model.Session, error) {
	idStr, err := s.client.Get(ctx, roomCodeIndexKey(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	return s.GetSession(ctx, model.SessionID(idStr))
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.SAdd(ctx, playersForSessionIndexKey(player.SessionID), string(player.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayersForSession(ctx context.Context, sessionID model.SessionID) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, playersForSessionIndexKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.Player{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	return players, nil
}

// Answer operations

func (s *Storage) AppendAnswer(ctx context.Context, answer *model.Answer) error {
	data, err := json.Marshal(answer)
	if err != nil {
		return err
	}

	// RPUSH keeps the ledger append-only and insertion-ordered
	return s.client.RPush(ctx, answersKey(answer.PlayerID), data).Err()
}

func (s *Storage) GetAnswersForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Answer, error) {
	values, err := s.client.LRange(ctx, answersKey(playerID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	answers := make([]*model.Answer, 0, len(values))
	for _, val := range values {
		var answer model.Answer
		if err := json.Unmarshal([]byte(val), &answer); err != nil {
			continue // Skip invalid data
		}
		answers = append(answers, &answer)
	}

	return answers, nil
}
