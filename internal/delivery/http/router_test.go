package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"vet-clinic-api/internal/delivery/dto"
	deliveryhttp "vet-clinic-api/internal/delivery/http"
	"vet-clinic-api/internal/delivery/http/handler"
	"vet-clinic-api/internal/delivery/http/middleware"
	"vet-clinic-api/internal/domain/entity"
	"vet-clinic-api/internal/usecase"
	"vet-clinic-api/pkg/session"
	"vet-clinic-api/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// The fakes below stand in for the PostgreSQL-backed repositories. They
// keep rows in maps and return the same pgconn errors the database would
// raise, so the constraint-to-error mapping in the usecases runs for real.

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func fkViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

type clinicState struct {
	mu           sync.Mutex
	users        map[int]entity.User
	owners       map[int]entity.Owner
	pets         map[int]entity.Pet
	vets         map[int]entity.Veterinarian
	appointments map[int]entity.Appointment
	treatments   map[int]entity.Treatment
	nextID       int
}

func newClinicState() *clinicState {
	return &clinicState{
		users:        map[int]entity.User{},
		owners:       map[int]entity.Owner{},
		pets:         map[int]entity.Pet{},
		vets:         map[int]entity.Veterinarian{},
		appointments: map[int]entity.Appointment{},
		treatments:   map[int]entity.Treatment{},
	}
}

func (s *clinicState) id() int {
	s.nextID++
	return s.nextID
}

func (s *clinicState) seedVet(fullName, phone string) entity.Veterinarian {
	s.mu.Lock()
	defer s.mu.Unlock()
	vet := entity.Veterinarian{VetID: s.id(), FullName: fullName, Phone: phone}
	s.vets[vet.VetID] = vet
	return vet
}

type fakeUserRepo struct{ state *clinicState }

func (r *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, existing := range r.state.users {
		if existing.Username == user.Username {
			return uniqueViolation("idx_users_username")
		}
	}
	user.UserID = r.state.id()
	user.CreatedAt = time.Now()
	r.state.users[user.UserID] = *user
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, user := range r.state.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if user, ok := r.state.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

type fakeOwnerRepo struct{ state *clinicState }

func (r *fakeOwnerRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Owner, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	owners := make([]entity.Owner, 0, len(r.state.owners))
	for _, owner := range r.state.owners {
		owners = append(owners, owner)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i].OwnerID > owners[j].OwnerID })
	return owners, nil
}

func (r *fakeOwnerRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Owner, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if owner, ok := r.state.owners[id]; ok {
		return &owner, nil
	}
	return nil, nil
}

func (r *fakeOwnerRepo) Create(ctx context.Context, db *gorm.DB, owner *entity.Owner) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	owner.OwnerID = r.state.id()
	r.state.owners[owner.OwnerID] = *owner
	return nil
}

func (r *fakeOwnerRepo) Update(ctx context.Context, db *gorm.DB, owner *entity.Owner) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.owners[owner.OwnerID] = *owner
	return nil
}

func (r *fakeOwnerRepo) Delete(ctx context.Context, db *gorm.DB, id int) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, pet := range r.state.pets {
		if pet.OwnerID == id {
			return fkViolation("fk_pets_owner")
		}
	}
	for _, appt := range r.state.appointments {
		if appt.OwnerID == id {
			return fkViolation("fk_appointments_owner")
		}
	}
	delete(r.state.owners, id)
	return nil
}

type fakePetRepo struct{ state *clinicState }

func (r *fakePetRepo) withOwner(pet entity.Pet) entity.Pet {
	pet.Owner = r.state.owners[pet.OwnerID]
	return pet
}

func (r *fakePetRepo) FindAll(ctx context.Context, db *gorm.DB, ownerID *int) ([]entity.Pet, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	pets := make([]entity.Pet, 0, len(r.state.pets))
	for _, pet := range r.state.pets {
		if ownerID != nil && pet.OwnerID != *ownerID {
			continue
		}
		pets = append(pets, r.withOwner(pet))
	}
	sort.Slice(pets, func(i, j int) bool { return pets[i].PetID > pets[j].PetID })
	return pets, nil
}

func (r *fakePetRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Pet, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if pet, ok := r.state.pets[id]; ok {
		loaded := r.withOwner(pet)
		return &loaded, nil
	}
	return nil, nil
}

func (r *fakePetRepo) Create(ctx context.Context, db *gorm.DB, pet *entity.Pet) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if _, ok := r.state.owners[pet.OwnerID]; !ok {
		return fkViolation("fk_pets_owner")
	}
	pet.PetID = r.state.id()
	stored := *pet
	stored.Owner = entity.Owner{}
	r.state.pets[pet.PetID] = stored
	return nil
}

func (r *fakePetRepo) Update(ctx context.Context, db *gorm.DB, pet *entity.Pet) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if _, ok := r.state.owners[pet.OwnerID]; !ok {
		return fkViolation("fk_pets_owner")
	}
	stored := *pet
	stored.Owner = entity.Owner{}
	r.state.pets[pet.PetID] = stored
	return nil
}

func (r *fakePetRepo) Delete(ctx context.Context, db *gorm.DB, id int) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, appt := range r.state.appointments {
		if appt.PetID == id {
			return fkViolation("fk_appointments_pet")
		}
	}
	for _, treatment := range r.state.treatments {
		if treatment.PetID == id {
			return fkViolation("fk_treatments_pet")
		}
	}
	delete(r.state.pets, id)
	return nil
}

type fakeVetRepo struct{ state *clinicState }

func (r *fakeVetRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Veterinarian, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	vets := make([]entity.Veterinarian, 0, len(r.state.vets))
	for _, vet := range r.state.vets {
		vets = append(vets, vet)
	}
	sort.Slice(vets, func(i, j int) bool { return vets[i].FullName < vets[j].FullName })
	return vets, nil
}

type fakeAppointmentRepo struct{ state *clinicState }

func (r *fakeAppointmentRepo) withRelations(appt entity.Appointment) entity.Appointment {
	appt.Owner = r.state.owners[appt.OwnerID]
	appt.Pet = r.state.pets[appt.PetID]
	appt.Vet = r.state.vets[appt.VetID]
	return appt
}

func (r *fakeAppointmentRepo) checkReferences(appt *entity.Appointment) error {
	if _, ok := r.state.owners[appt.OwnerID]; !ok {
		return fkViolation("fk_appointments_owner")
	}
	if _, ok := r.state.pets[appt.PetID]; !ok {
		return fkViolation("fk_appointments_pet")
	}
	if _, ok := r.state.vets[appt.VetID]; !ok {
		return fkViolation("fk_appointments_vet")
	}
	return nil
}

func (r *fakeAppointmentRepo) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	appointments := make([]entity.Appointment, 0, len(r.state.appointments))
	for _, appt := range r.state.appointments {
		day := appt.ApptDatetime.Truncate(24 * time.Hour)
		if filter != nil && filter.From != nil && day.Before(*filter.From) {
			continue
		}
		if filter != nil && filter.To != nil && day.After(*filter.To) {
			continue
		}
		appointments = append(appointments, r.withRelations(appt))
	}
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].ApptDatetime.After(appointments[j].ApptDatetime)
	})
	return appointments, nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if appt, ok := r.state.appointments[id]; ok {
		loaded := r.withRelations(appt)
		return &loaded, nil
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if err := r.checkReferences(appointment); err != nil {
		return err
	}
	appointment.AppointmentID = r.state.id()
	stored := *appointment
	stored.Owner, stored.Pet, stored.Vet = entity.Owner{}, entity.Pet{}, entity.Veterinarian{}
	r.state.appointments[appointment.AppointmentID] = stored
	return nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if err := r.checkReferences(appointment); err != nil {
		return err
	}
	stored := *appointment
	stored.Owner, stored.Pet, stored.Vet = entity.Owner{}, entity.Pet{}, entity.Veterinarian{}
	r.state.appointments[appointment.AppointmentID] = stored
	return nil
}

// Delete nulls appointment links on dependent treatments, matching the
// ON DELETE SET NULL declared on fk_treatments_appointment.
func (r *fakeAppointmentRepo) Delete(ctx context.Context, db *gorm.DB, id int) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for treatmentID, treatment := range r.state.treatments {
		if treatment.AppointmentID != nil && *treatment.AppointmentID == id {
			treatment.AppointmentID = nil
			r.state.treatments[treatmentID] = treatment
		}
	}
	delete(r.state.appointments, id)
	return nil
}

type fakeTreatmentRepo struct{ state *clinicState }

func (r *fakeTreatmentRepo) withRelations(treatment entity.Treatment) entity.Treatment {
	treatment.Pet = r.state.pets[treatment.PetID]
	treatment.Vet = r.state.vets[treatment.VetID]
	return treatment
}

func (r *fakeTreatmentRepo) checkReferences(treatment *entity.Treatment) error {
	if treatment.AppointmentID != nil {
		if _, ok := r.state.appointments[*treatment.AppointmentID]; !ok {
			return fkViolation("fk_treatments_appointment")
		}
	}
	if _, ok := r.state.pets[treatment.PetID]; !ok {
		return fkViolation("fk_treatments_pet")
	}
	if _, ok := r.state.vets[treatment.VetID]; !ok {
		return fkViolation("fk_treatments_vet")
	}
	return nil
}

func (r *fakeTreatmentRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Treatment, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	treatments := make([]entity.Treatment, 0, len(r.state.treatments))
	for _, treatment := range r.state.treatments {
		treatments = append(treatments, r.withRelations(treatment))
	}
	sort.Slice(treatments, func(i, j int) bool {
		if !treatments[i].TreatmentDate.Equal(treatments[j].TreatmentDate) {
			return treatments[i].TreatmentDate.After(treatments[j].TreatmentDate)
		}
		return treatments[i].TreatmentID > treatments[j].TreatmentID
	})
	return treatments, nil
}

func (r *fakeTreatmentRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Treatment, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if treatment, ok := r.state.treatments[id]; ok {
		loaded := r.withRelations(treatment)
		return &loaded, nil
	}
	return nil, nil
}

func (r *fakeTreatmentRepo) Create(ctx context.Context, db *gorm.DB, treatment *entity.Treatment) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if err := r.checkReferences(treatment); err != nil {
		return err
	}
	treatment.TreatmentID = r.state.id()
	stored := *treatment
	stored.Pet, stored.Vet = entity.Pet{}, entity.Veterinarian{}
	r.state.treatments[treatment.TreatmentID] = stored
	return nil
}

func (r *fakeTreatmentRepo) Update(ctx context.Context, db *gorm.DB, treatment *entity.Treatment) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if err := r.checkReferences(treatment); err != nil {
		return err
	}
	stored := *treatment
	stored.Pet, stored.Vet = entity.Pet{}, entity.Veterinarian{}
	r.state.treatments[treatment.TreatmentID] = stored
	return nil
}

func (r *fakeTreatmentRepo) Delete(ctx context.Context, db *gorm.DB, id int) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	delete(r.state.treatments, id)
	return nil
}

// Test server wiring

type testServer struct {
	server *httptest.Server
	state  *clinicState
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	state := newClinicState()
	sessions := session.NewMemoryStore(time.Hour)
	v := validator.NewValidator()

	authUsecase := usecase.NewAuthUsecase(nil, log, &fakeUserRepo{state}, sessions, time.Hour)
	ownerUsecase := usecase.NewOwnerUsecase(nil, log, &fakeOwnerRepo{state})
	petUsecase := usecase.NewPetUsecase(nil, log, &fakePetRepo{state})
	vetUsecase := usecase.NewVetUsecase(nil, log, &fakeVetRepo{state})
	appointmentUsecase := usecase.NewAppointmentUsecase(nil, log, &fakeAppointmentRepo{state})
	treatmentUsecase := usecase.NewTreatmentUsecase(nil, log, &fakeTreatmentRepo{state})

	router := deliveryhttp.NewRouter(
		handler.NewAuthHandler(authUsecase, v),
		handler.NewOwnerHandler(ownerUsecase, v),
		handler.NewPetHandler(petUsecase, v),
		handler.NewVetHandler(vetUsecase),
		handler.NewAppointmentHandler(appointmentUsecase, v),
		handler.NewTreatmentHandler(treatmentUsecase, v),
		middleware.NewAuthMiddleware(sessions),
		middleware.NewCORSMiddleware(),
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)

	return &testServer{server: server, state: state}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode body: %v", method, path, err)
	}
	return res.StatusCode, env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func (ts *testServer) login(t *testing.T, username, password string) string {
	t.Helper()

	status, env := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: username,
		Password: password,
	})
	if status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", status, env.Message)
	}

	var result dto.LoginResponse
	decodeData(t, env, &result)
	if result.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return result.Token
}

func (ts *testServer) registerAndLogin(t *testing.T) string {
	t.Helper()

	status, env := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Username: "reception",
		Password: "pw123",
		FullName: "Front Desk",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", status, env.Message)
	}
	return ts.login(t, "reception", "pw123")
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	res, err := ts.server.Client().Get(ts.server.URL + "/api/v1/health")
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/v1/owners", "/api/v1/pets", "/api/v1/vets", "/api/v1/appointments", "/api/v1/treatments"} {
		status, _ := ts.do(t, http.MethodGet, path, "", nil)
		if status != http.StatusUnauthorized {
			t.Errorf("GET %s without token: expected 401, got %d", path, status)
		}
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	status, env := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Username: "alice",
		Password: "pw123",
		FullName: "Alice A",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", status)
	}

	var user dto.UserResponse
	decodeData(t, env, &user)
	if user.Role != "staff" {
		t.Fatalf("expected default role staff, got %q", user.Role)
	}

	// Same username again
	status, _ = ts.do(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Username: "alice",
		Password: "other",
		FullName: "Alice B",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", status)
	}

	status, _ = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "nobody", Password: "pw123"})
	if status != http.StatusBadRequest {
		t.Fatalf("login unknown user: expected 400, got %d", status)
	}

	status, _ = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "alice", Password: "wrong"})
	if status != http.StatusUnauthorized {
		t.Fatalf("login wrong password: expected 401, got %d", status)
	}

	token := ts.login(t, "alice", "pw123")

	status, env = ts.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	if status != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", status)
	}
	var me dto.MeResponse
	decodeData(t, env, &me)
	if me.User == nil || me.User.FullName != "Alice A" {
		t.Fatalf("me: unexpected identity %+v", me.User)
	}
}

func TestMeWithoutSessionReturnsNullUser(t *testing.T) {
	ts := newTestServer(t)

	status, env := ts.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	if status != http.StatusOK {
		t.Fatalf("me without token: expected 200, got %d", status)
	}

	var me dto.MeResponse
	decodeData(t, env, &me)
	if me.User != nil {
		t.Fatalf("expected null user, got %+v", me.User)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t)

	status, _ := ts.do(t, http.MethodGet, "/api/v1/owners", token, nil)
	if status != http.StatusOK {
		t.Fatalf("owners before logout: expected 200, got %d", status)
	}

	status, _ = ts.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	if status != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", status)
	}

	status, _ = ts.do(t, http.MethodGet, "/api/v1/owners", token, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("owners after logout: expected 401, got %d", status)
	}
}

func TestOwnerPetLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t)

	status, env := ts.do(t, http.MethodPost, "/api/v1/owners", token, dto.CreateOwnerRequest{
		FullName: "Bob",
		Phone:    "0801112222",
		Address:  "12 Harbor Rd",
	})
	if status != http.StatusCreated {
		t.Fatalf("create owner: expected 201, got %d", status)
	}
	var owner dto.OwnerResponse
	decodeData(t, env, &owner)

	status, env = ts.do(t, http.MethodPost, "/api/v1/pets", token, dto.CreatePetRequest{
		OwnerID: owner.OwnerID,
		Name:    "Fido",
		Species: "Dog",
		Sex:     "M",
	})
	if status != http.StatusCreated {
		t.Fatalf("create pet: expected 201, got %d", status)
	}
	var pet dto.PetResponse
	decodeData(t, env, &pet)
	if pet.OwnerName != "Bob" {
		t.Fatalf("create pet: expected owner_name Bob, got %q", pet.OwnerName)
	}

	// Pet pointing at a nonexistent owner is a referential conflict
	status, _ = ts.do(t, http.MethodPost, "/api/v1/pets", token, dto.CreatePetRequest{
		OwnerID: 9999,
		Name:    "Ghost",
		Species: "Cat",
		Sex:     "F",
	})
	if status != http.StatusConflict {
		t.Fatalf("create pet with bad owner: expected 409, got %d", status)
	}

	status, env = ts.do(t, http.MethodGet, "/api/v1/pets", token, nil)
	if status != http.StatusOK {
		t.Fatalf("list pets: expected 200, got %d", status)
	}
	var pets dto.PetListResponse
	decodeData(t, env, &pets)
	if pets.Total != 1 || pets.Pets[0].OwnerName != "Bob" {
		t.Fatalf("list pets: unexpected result %+v", pets)
	}

	// owner_id filter excludes other owners
	status, env = ts.do(t, http.MethodGet, "/api/v1/pets?owner_id=9999", token, nil)
	if status != http.StatusOK {
		t.Fatalf("filtered list pets: expected 200, got %d", status)
	}
	decodeData(t, env, &pets)
	if pets.Total != 0 {
		t.Fatalf("filtered list pets: expected 0, got %d", pets.Total)
	}

	// Owner cannot go while the pet references them
	status, _ = ts.do(t, http.MethodDelete, "/api/v1/owners/"+strconv.Itoa(owner.OwnerID), token, nil)
	if status != http.StatusConflict {
		t.Fatalf("delete owner with pets: expected 409, got %d", status)
	}

	status, _ = ts.do(t, http.MethodDelete, "/api/v1/pets/"+strconv.Itoa(pet.PetID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete pet: expected 200, got %d", status)
	}

	status, _ = ts.do(t, http.MethodDelete, "/api/v1/owners/"+strconv.Itoa(owner.OwnerID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete owner after pet removed: expected 200, got %d", status)
	}

	// Second delete of the same owner
	status, _ = ts.do(t, http.MethodDelete, "/api/v1/owners/"+strconv.Itoa(owner.OwnerID), token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("double delete owner: expected 404, got %d", status)
	}
}

func TestAppointmentFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t)
	vet := ts.state.seedVet("Dr. Somsak", "0812345678")

	status, env := ts.do(t, http.MethodPost, "/api/v1/owners", token, dto.CreateOwnerRequest{
		FullName: "Carol", Phone: "0803334444", Address: "7 Elm St",
	})
	if status != http.StatusCreated {
		t.Fatalf("create owner: got %d", status)
	}
	var owner dto.OwnerResponse
	decodeData(t, env, &owner)

	status, env = ts.do(t, http.MethodPost, "/api/v1/pets", token, dto.CreatePetRequest{
		OwnerID: owner.OwnerID, Name: "Whiskers", Species: "Cat", Sex: "F",
	})
	if status != http.StatusCreated {
		t.Fatalf("create pet: got %d", status)
	}
	var pet dto.PetResponse
	decodeData(t, env, &pet)

	// Nonexistent vet is a referential conflict, not a validation error
	status, _ = ts.do(t, http.MethodPost, "/api/v1/appointments", token, dto.CreateAppointmentRequest{
		OwnerID: owner.OwnerID, PetID: pet.PetID, VetID: 9999, ApptDatetime: "2026-09-14T10:30",
	})
	if status != http.StatusConflict {
		t.Fatalf("create appointment with bad vet: expected 409, got %d", status)
	}

	status, env = ts.do(t, http.MethodPost, "/api/v1/appointments", token, dto.CreateAppointmentRequest{
		OwnerID: owner.OwnerID, PetID: pet.PetID, VetID: vet.VetID, ApptDatetime: "2026-09-14T10:30",
	})
	if status != http.StatusCreated {
		t.Fatalf("create appointment: expected 201, got %d", status)
	}
	var appt dto.AppointmentResponse
	decodeData(t, env, &appt)
	if appt.OwnerName != "Carol" || appt.PetName != "Whiskers" || appt.VetName != "Dr. Somsak" {
		t.Fatalf("appointment view missing joined names: %+v", appt)
	}
	if appt.ApptDatetime != "2026-09-14T10:30" {
		t.Fatalf("unexpected appt_datetime %q", appt.ApptDatetime)
	}

	status, _ = ts.do(t, http.MethodPost, "/api/v1/appointments", token, dto.CreateAppointmentRequest{
		OwnerID: owner.OwnerID, PetID: pet.PetID, VetID: vet.VetID, ApptDatetime: "not-a-datetime",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("create appointment with bad datetime: expected 400, got %d", status)
	}

	// The from/to bounds are inclusive on the scheduled date
	var list dto.AppointmentListResponse

	status, env = ts.do(t, http.MethodGet, "/api/v1/appointments?from=2026-09-14&to=2026-09-14", token, nil)
	if status != http.StatusOK {
		t.Fatalf("filtered list: expected 200, got %d", status)
	}
	decodeData(t, env, &list)
	if list.Total != 1 {
		t.Fatalf("inclusive date filter: expected 1 appointment, got %d", list.Total)
	}

	status, env = ts.do(t, http.MethodGet, "/api/v1/appointments?from=2026-09-15", token, nil)
	if status != http.StatusOK {
		t.Fatalf("filtered list: expected 200, got %d", status)
	}
	decodeData(t, env, &list)
	if list.Total != 0 {
		t.Fatalf("out-of-range filter: expected 0 appointments, got %d", list.Total)
	}

	status, _ = ts.do(t, http.MethodGet, "/api/v1/appointments?from=sometime", token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("bad filter: expected 400, got %d", status)
	}
}

func TestTreatmentSurvivesAppointmentDeletion(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t)
	vet := ts.state.seedVet("Dr. Pranee", "0898765432")

	_, env := ts.do(t, http.MethodPost, "/api/v1/owners", token, dto.CreateOwnerRequest{
		FullName: "Dan", Phone: "0805556666", Address: "3 Oak Ave",
	})
	var owner dto.OwnerResponse
	decodeData(t, env, &owner)

	_, env = ts.do(t, http.MethodPost, "/api/v1/pets", token, dto.CreatePetRequest{
		OwnerID: owner.OwnerID, Name: "Rex", Species: "Dog", Sex: "M",
	})
	var pet dto.PetResponse
	decodeData(t, env, &pet)

	_, env = ts.do(t, http.MethodPost, "/api/v1/appointments", token, dto.CreateAppointmentRequest{
		OwnerID: owner.OwnerID, PetID: pet.PetID, VetID: vet.VetID, ApptDatetime: "2026-10-01T09:00",
	})
	var appt dto.AppointmentResponse
	decodeData(t, env, &appt)

	status, env := ts.do(t, http.MethodPost, "/api/v1/treatments", token, dto.CreateTreatmentRequest{
		PetID:         pet.PetID,
		VetID:         vet.VetID,
		AppointmentID: &appt.AppointmentID,
		Diagnosis:     "Otitis externa",
		TreatmentDate: "2026-10-01",
	})
	if status != http.StatusCreated {
		t.Fatalf("create treatment: expected 201, got %d", status)
	}
	var treatment dto.TreatmentResponse
	decodeData(t, env, &treatment)
	if treatment.PetName != "Rex" || treatment.VetName != "Dr. Pranee" {
		t.Fatalf("treatment view missing joined names: %+v", treatment)
	}
	if treatment.AppointmentID == nil || *treatment.AppointmentID != appt.AppointmentID {
		t.Fatalf("treatment not linked to appointment: %+v", treatment)
	}

	// Deleting the appointment detaches the treatment instead of failing
	status, _ = ts.do(t, http.MethodDelete, "/api/v1/appointments/"+strconv.Itoa(appt.AppointmentID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete appointment: expected 200, got %d", status)
	}

	status, env = ts.do(t, http.MethodGet, "/api/v1/treatments", token, nil)
	if status != http.StatusOK {
		t.Fatalf("list treatments: expected 200, got %d", status)
	}
	var list dto.TreatmentListResponse
	decodeData(t, env, &list)
	if list.Total != 1 {
		t.Fatalf("expected 1 treatment, got %d", list.Total)
	}
	if list.Treatments[0].AppointmentID != nil {
		t.Fatalf("expected appointment link nulled, got %v", *list.Treatments[0].AppointmentID)
	}

	// The pet still has a treatment on record, so it cannot be deleted
	status, _ = ts.do(t, http.MethodDelete, "/api/v1/pets/"+strconv.Itoa(pet.PetID), token, nil)
	if status != http.StatusConflict {
		t.Fatalf("delete pet with treatments: expected 409, got %d", status)
	}
}

func TestVetsAreListOnly(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t)
	ts.state.seedVet("Dr. Wichai", "0811111111")
	ts.state.seedVet("Dr. Anong", "0822222222")

	status, env := ts.do(t, http.MethodGet, "/api/v1/vets", token, nil)
	if status != http.StatusOK {
		t.Fatalf("list vets: expected 200, got %d", status)
	}

	var list dto.VetListResponse
	decodeData(t, env, &list)
	if list.Total != 2 {
		t.Fatalf("expected 2 vets, got %d", list.Total)
	}
	if list.Vets[0].FullName != "Dr. Anong" {
		t.Fatalf("expected vets ordered by name, got %+v", list.Vets)
	}

	// No mutation routes exist for vets
	req, err := http.NewRequest(http.MethodPost, ts.server.URL+"/api/v1/vets", bytes.NewReader([]byte(`{"full_name":"Dr. Nobody"}`)))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := ts.server.Client().Do(req)
	if err != nil {
		t.Fatalf("POST /vets: %v", err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK || res.StatusCode == http.StatusCreated {
		t.Fatalf("POST /vets must not exist, got %d", res.StatusCode)
	}
}
