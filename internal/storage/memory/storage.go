package memory

import (
	"context"
	"sync"

	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// A single RWMutex covers every operation, which makes the room-code
// check-and-insert in CreateSession naturally atomic.
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	questionSets  map[model.QuestionSetID]*model.QuestionSet
	sessions      map[model.SessionID]*model.Session
	roomCodeIndex map[model.RoomCode]model.SessionID
	players       map[model.PlayerID]*model.Player
	answers       map[model.PlayerID][]*model.Answer
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		questionSets:  make(map[model.QuestionSetID]*model.QuestionSet),
		sessions:      make(map[model.SessionID]*model.Session),
		roomCodeIndex: make(map[model.RoomCode]model.SessionID),
		players:       make(map[model.PlayerID]*model.Player),
		answers:       make(map[model.PlayerID][]*model.Answer),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Question set operations

func (s *Storage) SaveQuestionSet(ctx context.Context, set *model.QuestionSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questionSets[set.ID] = set
	return nil
}

func (s *Storage) GetQuestionSet(ctx context.Context, id model.QuestionSetID) (*model.QuestionSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.questionSets[id]
	if !ok {
		return nil, model.ErrQuestionSetNotFound
	}
	return set, nil
}

func (s *Storage) GetQuestionSetsForOwner(ctx context.Context, owner model.UserID) ([]*model.QuestionSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sets []*model.QuestionSet
	for _, set := range s.questionSets {
		if set.OwnerID == owner {
			sets = append(sets, set)
		}
	}
	return sets, nil
}

func (s *Storage) DeleteQuestionSet(ctx context.Context, id model.QuestionSetID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.questionSets, id)
	return nil
}

// Session operations

func (s *Storage) CreateSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.roomCodeIndex[session.RoomCode]; taken {
		return model.ErrRoomCodeTaken
	}
	s.roomCodeIndex[session.RoomCode] = session.ID
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) GetSessionByRoomCode(ctx context.Context, code model.RoomCode) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.roomCodeIndex[code]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayersForSession(ctx context.Context, sessionID model.SessionID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var players []*model.Player
	for _, player := range s.players {
		if player.SessionID == sessionID {
			players = append(players, player)
		}
	}
	return players, nil
}

// Answer operations

func (s *Storage) AppendAnswer(ctx context.Context, answer *model.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[answer.PlayerID] = append(s.answers[answer.PlayerID], answer)
	return nil
}

func (s *Storage) GetAnswersForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.answers[playerID]
	result := make([]*model.Answer, len(rows))
	copy(result, rows)
	return result, nil
}
