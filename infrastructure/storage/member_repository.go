package storage

import (
	"context"
	"fmt"
	"greeting-hub/domain"
	"greeting-hub/errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type diskGroup struct {
	ID        string `cbor:"id"`
	Name      string `cbor:"name"`
	OwnerID   string `cbor:"owner_id"`
	CreatedAt int64  `cbor:"created_at"`
}

type diskMember struct {
	GroupID  string `cbor:"group_id"`
	UserID   string `cbor:"user_id"`
	Role     string `cbor:"role"`
	JoinedAt int64  `cbor:"joined_at"`
}

// MemberRepository stores groups under "group:{id}" and memberships under "member:{group}:{user}".
type MemberRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMemberRepository(db *badger.DB, log *slog.Logger) *MemberRepository {
	return &MemberRepository{db: db, log: log}
}

func groupKey(id domain.GroupID) string {
	return fmt.Sprintf("group:%s", id)
}

func memberKey(groupID domain.GroupID, userID domain.UserID) string {
	return fmt.Sprintf("member:%s:%s", groupID, userID)
}

func (r *MemberRepository) InsertGroup(_ context.Context, group domain.Group) (domain.Group, error) {
	err := r.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, groupKey(group.ID), diskGroup{
			ID:        string(group.ID),
			Name:      group.Name,
			OwnerID:   string(group.OwnerID),
			CreatedAt: group.CreatedAt.UnixNano(),
		})
	})
	if err != nil {
		return domain.Group{}, err
	}
	return group, nil
}

func (r *MemberRepository) GetGroup(_ context.Context, id domain.GroupID) (domain.Group, error) {
	var dg diskGroup
	if err := r.db.View(func(txn *badger.Txn) error {
		return getValue(txn, groupKey(id), &dg)
	}); err != nil {
		return domain.Group{}, err
	}
	return domain.Group{
		ID:        domain.GroupID(dg.ID),
		Name:      dg.Name,
		OwnerID:   domain.UserID(dg.OwnerID),
		CreatedAt: time.Unix(0, dg.CreatedAt).UTC(),
	}, nil
}

// InsertMember adds a member to an existing group. Adding an existing member keeps the first record.
func (r *MemberRepository) InsertMember(_ context.Context, member domain.Member) (domain.Member, error) {
	stored := member
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(groupKey(member.GroupID))); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrNotFound
			}
			return err
		}
		var existing diskMember
		err := getValue(txn, memberKey(member.GroupID, member.UserID), &existing)
		switch {
		case err == nil:
			stored = toMember(existing)
			return nil
		case !errors.Is(err, errors.ErrNotFound):
			return err
		}
		return setValue(txn, memberKey(member.GroupID, member.UserID), diskMember{
			GroupID:  string(member.GroupID),
			UserID:   string(member.UserID),
			Role:     string(member.Role),
			JoinedAt: member.JoinedAt.UnixNano(),
		})
	})
	if err != nil {
		return domain.Member{}, err
	}
	return stored, nil
}

func (r *MemberRepository) IsMember(_ context.Context, groupID domain.GroupID, userID domain.UserID) (bool, error) {
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(memberKey(groupID, userID)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

func (r *MemberRepository) ListMembers(_ context.Context, groupID domain.GroupID) ([]domain.Member, error) {
	var members []domain.Member
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("member:%s:", groupID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var dm diskMember
			if err := it.Item().Value(func(val []byte) error {
				return unmarshal(val, &dm)
			}); err != nil {
				return err
			}
			members = append(members, toMember(dm))
		}
		return nil
	})
	return members, err
}

func toMember(dm diskMember) domain.Member {
	return domain.Member{
		GroupID:  domain.GroupID(dm.GroupID),
		UserID:   domain.UserID(dm.UserID),
		Role:     domain.MemberRole(dm.Role),
		JoinedAt: time.Unix(0, dm.JoinedAt).UTC(),
	}
}
