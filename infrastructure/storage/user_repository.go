package storage

import (
	"fmt"
	"greeting-hub/domain"
	"greeting-hub/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type diskUser struct {
	ID           string   `cbor:"id"`
	Email        string   `cbor:"email"`
	PasswordHash string   `cbor:"password_hash"`
	Roles        []string `cbor:"roles"`
	CreatedAt    int64    `cbor:"created_at"`
}

// UserRepository stores accounts under "user:{email}" with an "user_id:{id}" -> email pointer.
type UserRepository struct {
	db           *badger.DB
	defaultRoles []string
}

func NewUserRepository(db *badger.DB, defaultRoles ...string) *UserRepository {
	if len(defaultRoles) == 0 {
		defaultRoles = []string{"user"}
	}
	return &UserRepository{db: db, defaultRoles: defaultRoles}
}

// CreateUser persists the user in BadgerDB.
// It returns the newly generated User ID
func (u *UserRepository) CreateUser(email, hashedPassword string) (domain.UserID, error) {
	newID := uuid.New().String()
	record := diskUser{
		ID:           newID,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UnixNano(),
		Roles:        u.defaultRoles,
	}

	err := u.db.Update(func(txn *badger.Txn) error {
		key := "user:" + email
		if _, err := txn.Get([]byte(key)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := setValue(txn, key, record); err != nil {
			return err
		}
		return txn.Set([]byte("user_id:"+newID), []byte(email))
	})
	if err != nil {
		return "", err
	}
	return domain.UserID(newID), nil
}

func (u *UserRepository) GetUserByEmail(email string) (domain.User, error) {
	var record diskUser
	err := u.db.View(func(txn *badger.Txn) error {
		return getValue(txn, "user:"+email, &record)
	})
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:           domain.UserID(record.ID),
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		Roles:        record.Roles,
		CreatedAt:    time.Unix(0, record.CreatedAt).UTC(),
	}, nil
}

func (u *UserRepository) Exists(id domain.UserID) (bool, error) {
	found := false
	err := u.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(fmt.Sprintf("user_id:%s", id)))
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

// GrantRole adds a role to an existing account, used to bootstrap administrators.
func (u *UserRepository) GrantRole(email, role string) error {
	return u.db.Update(func(txn *badger.Txn) error {
		var record diskUser
		if err := getValue(txn, "user:"+email, &record); err != nil {
			return err
		}
		for _, r := range record.Roles {
			if r == role {
				return nil
			}
		}
		record.Roles = append(record.Roles, role)
		return setValue(txn, "user:"+email, record)
	})
}
