package services

import "testing"

func TestRegisterLoginRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("player@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("Register returned an empty token")
	}

	userID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID == 0 {
		t.Error("token carries no user id")
	}

	loginToken, err := svc.Login("player@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	loginID, err := svc.ValidateToken(loginToken)
	if err != nil {
		t.Fatalf("ValidateToken(login): %v", err)
	}
	if loginID != userID {
		t.Errorf("login resolved user %d, register resolved %d", loginID, userID)
	}
}

func TestAuthRejections(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	if _, err := svc.Register("player@example.com", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Register("player@example.com", "different"); err == nil {
		t.Error("duplicate registration succeeded")
	}
	if _, err := svc.Login("player@example.com", "wrong-password"); err == nil {
		t.Error("login with wrong password succeeded")
	}
	if _, err := svc.Login("nobody@example.com", "password123"); err == nil {
		t.Error("login for unknown email succeeded")
	}
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token validated")
	}

	other := NewAuthService(db, "other-secret")
	token, _ := svc.GenerateToken(1)
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret validated")
	}
}
