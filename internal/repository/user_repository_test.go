package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/JC-Quero/gym-tracker/internal/entity"
)

func TestCreateAndListUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, &entity.User{Username: "ana", Role: "alumno", HashedPassword: "hash"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].Username != "ana" {
		t.Errorf("unexpected listing: %+v", users)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, &entity.User{Username: "ana", Role: "alumno", HashedPassword: "hash"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := repo.CreateUser(ctx, &entity.User{Username: "ana", Role: "alumno", HashedPassword: "hash"})
	var validationErr *entity.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Field != "username" {
		t.Errorf("expected username field, got %q", validationErr.Field)
	}
}

func TestGetUserByUsernameMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetUserByUsername(context.Background(), "nobody")
	var notFound *entity.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCreateExerciseDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	if _, err := repo.CreateExercise(ctx, &entity.Exercise{Name: "Squat", Category: "legs"}); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	_, err := repo.CreateExercise(ctx, &entity.Exercise{Name: "Squat", Category: "legs"})
	var validationErr *entity.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
