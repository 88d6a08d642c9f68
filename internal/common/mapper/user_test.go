package mapper

import (
	"encoding/json"
	"testing"

	userdomain "github.com/AlibekovAA/users-api/internal/user/domain"
)

func TestUsersToDTO_KeepsOrder(t *testing.T) {
	got := UsersToDTO([]userdomain.User{{ID: "u002", Name: "Bruno"}, {ID: "u001", Name: "Ana"}})

	if len(got) != 2 || got[0].ID != "u002" || got[1].ID != "u001" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestUsersToDTO_EmptyEncodesAsArray(t *testing.T) {
	raw, err := json.Marshal(UsersToDTO(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("expected [], got %s", raw)
	}
}

func TestUserToDTO_JSONFields(t *testing.T) {
	raw, err := json.Marshal(UserToDTO(userdomain.User{ID: "u001", Name: "Ana", Email: "a@x.com", Password: "Abcdef1!"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"u001","name":"Ana","email":"a@x.com","password":"Abcdef1!"}`
	if string(raw) != want {
		t.Errorf("expected %s, got %s", want, raw)
	}
}
