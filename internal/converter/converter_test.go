package converter

import (
	"testing"
	"time"

	"vet-clinic-api/internal/domain/entity"
)

func TestPetToResponse_IncludesOwnerName(t *testing.T) {
	birthdate := time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC)
	breed := "Labrador"
	pet := &entity.Pet{
		PetID:     3,
		OwnerID:   1,
		Name:      "Fido",
		Species:   "Dog",
		Breed:     &breed,
		Sex:       entity.SexMale,
		Birthdate: &birthdate,
		Owner:     entity.Owner{OwnerID: 1, FullName: "Bob"},
	}

	resp := PetToResponse(pet)
	if resp.OwnerName != "Bob" {
		t.Fatalf("expected owner name Bob, got %q", resp.OwnerName)
	}
	if resp.Birthdate == nil || *resp.Birthdate != "2022-05-10" {
		t.Fatalf("expected birthdate 2022-05-10, got %v", resp.Birthdate)
	}
	if resp.Breed == nil || *resp.Breed != "Labrador" {
		t.Fatalf("expected breed Labrador, got %v", resp.Breed)
	}
}

func TestPetToResponse_OptionalFieldsStayNull(t *testing.T) {
	pet := &entity.Pet{
		PetID:   4,
		OwnerID: 1,
		Name:    "Mia",
		Species: "Cat",
		Sex:     entity.SexFemale,
		Owner:   entity.Owner{OwnerID: 1, FullName: "Bob"},
	}

	resp := PetToResponse(pet)
	if resp.Breed != nil {
		t.Fatalf("expected nil breed, got %v", *resp.Breed)
	}
	if resp.Birthdate != nil {
		t.Fatalf("expected nil birthdate, got %v", *resp.Birthdate)
	}
}

func TestAppointmentToResponse_JoinsAllThreeNames(t *testing.T) {
	reason := "Annual checkup"
	appointment := &entity.Appointment{
		AppointmentID: 9,
		OwnerID:       1,
		PetID:         3,
		VetID:         2,
		ApptDatetime:  time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
		Reason:        &reason,
		Owner:         entity.Owner{OwnerID: 1, FullName: "Bob"},
		Pet:           entity.Pet{PetID: 3, Name: "Fido", Species: "Dog", Sex: entity.SexMale},
		Vet:           entity.Veterinarian{VetID: 2, FullName: "Dr. Anong Chaiyo"},
	}

	resp := AppointmentToResponse(appointment)
	if resp.OwnerName != "Bob" || resp.PetName != "Fido" || resp.VetName != "Dr. Anong Chaiyo" {
		t.Fatalf("unexpected joined names: %+v", resp)
	}
	if resp.ApptDatetime != "2026-09-14T10:30" {
		t.Fatalf("unexpected datetime formatting: %q", resp.ApptDatetime)
	}
	if resp.Species != "Dog" || resp.Sex != entity.SexMale {
		t.Fatalf("expected pet details on the view, got %+v", resp)
	}
}

func TestTreatmentToResponse_OptionalAppointmentLink(t *testing.T) {
	treatment := &entity.Treatment{
		TreatmentID:   5,
		PetID:         3,
		VetID:         2,
		Diagnosis:     "Otitis",
		TreatmentDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Pet:           entity.Pet{PetID: 3, Name: "Fido", Species: "Dog"},
		Vet:           entity.Veterinarian{VetID: 2, FullName: "Dr. Suda Prasert"},
	}

	resp := TreatmentToResponse(treatment)
	if resp.AppointmentID != nil {
		t.Fatalf("expected nil appointment link, got %v", *resp.AppointmentID)
	}
	if resp.PetName != "Fido" || resp.VetName != "Dr. Suda Prasert" {
		t.Fatalf("unexpected joined names: %+v", resp)
	}
	if resp.TreatmentDate != "2026-02-01" {
		t.Fatalf("unexpected date formatting: %q", resp.TreatmentDate)
	}
}

func TestOwnersToListResponse_PreservesOrder(t *testing.T) {
	owners := []entity.Owner{
		{OwnerID: 3, FullName: "Carol"},
		{OwnerID: 2, FullName: "Bob"},
		{OwnerID: 1, FullName: "Alice"},
	}

	resp := OwnersToListResponse(owners)
	if resp.Total != 3 {
		t.Fatalf("expected total 3, got %d", resp.Total)
	}
	for i, want := range []int{3, 2, 1} {
		if resp.Owners[i].OwnerID != want {
			t.Fatalf("expected owner %d at position %d, got %d", want, i, resp.Owners[i].OwnerID)
		}
	}
}
