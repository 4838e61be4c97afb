package mocks

import (
	"context"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/service"
)

// MockPermissionService is a mock implementation of PermissionService.
// GlobalPermissions is keyed by "userID|permission", EventRoles by
// "userID|eventID".
type MockPermissionService struct {
	GlobalPermissions map[string]bool
	EventRoles        map[string]models.EventRole
	Err               error
}

func NewMockPermissionService() *MockPermissionService {
	return &MockPermissionService{
		GlobalPermissions: make(map[string]bool),
		EventRoles:        make(map[string]models.EventRole),
	}
}

func (m *MockPermissionService) HasGlobalPermission(ctx context.Context, userID, permission string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.GlobalPermissions[userID+"|"+permission], nil
}

func (m *MockPermissionService) GetEventRole(ctx context.Context, userID, eventID string) (models.EventRole, error) {
	if m.Err != nil {
		return models.EventRoleNone, m.Err
	}
	return m.EventRoles[userID+"|"+eventID], nil
}

func (m *MockPermissionService) CanManageEvent(ctx context.Context, userID, eventID string) (bool, error) {
	role, err := m.GetEventRole(ctx, userID, eventID)
	if err != nil {
		return false, err
	}
	return role.CanManage(), nil
}

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	Events     map[string]*models.Event
	Lifecycles map[string]*service.EventLifecycle
	CountsMap  map[string]int
	Err        error
	Created    []*service.CreateEventRequest
	Modalities map[string][]string
}

func NewMockEventService() *MockEventService {
	return &MockEventService{
		Events:     make(map[string]*models.Event),
		Lifecycles: make(map[string]*service.EventLifecycle),
		CountsMap:  make(map[string]int),
		Modalities: make(map[string][]string),
	}
}

func (m *MockEventService) Create(ctx context.Context, req *service.CreateEventRequest) (*models.Event, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Created = append(m.Created, req)
	event := &models.Event{ID: "event-" + req.Name, Name: req.Name}
	m.Events[event.ID] = event
	return event, nil
}

func (m *MockEventService) Lifecycle(ctx context.Context, eventID string) (*service.EventLifecycle, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	lc, ok := m.Lifecycles[eventID]
	if !ok {
		return nil, &service.NotFoundError{Kind: "event", ID: eventID}
	}
	return lc, nil
}

func (m *MockEventService) SetModalities(ctx context.Context, eventID string, modalityIDs []string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Events[eventID]; !ok {
		return &service.NotFoundError{Kind: "event", ID: eventID}
	}
	m.Modalities[eventID] = modalityIDs
	return nil
}

func (m *MockEventService) Counts(ctx context.Context) (map[string]int, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.CountsMap, nil
}

// MockTeamService is a mock implementation of TeamService
type MockTeamService struct {
	MembersByEvent map[string][]*models.TeamMember
	Err            error
}

func NewMockTeamService() *MockTeamService {
	return &MockTeamService{
		MembersByEvent: make(map[string][]*models.TeamMember),
	}
}

func (m *MockTeamService) AddMember(ctx context.Context, userID, eventID string, role models.EventRole) (*models.TeamMember, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	member := &models.TeamMember{UserID: userID, EventID: eventID, Role: role}
	members := m.MembersByEvent[eventID]
	for i, existing := range members {
		if existing.UserID == userID {
			members[i] = member
			return member, nil
		}
	}
	m.MembersByEvent[eventID] = append(members, member)
	return member, nil
}

func (m *MockTeamService) RemoveMember(ctx context.Context, userID, eventID string) error {
	if m.Err != nil {
		return m.Err
	}
	members := m.MembersByEvent[eventID]
	for i, existing := range members {
		if existing.UserID == userID {
			m.MembersByEvent[eventID] = append(members[:i], members[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockTeamService) Members(ctx context.Context, eventID string) ([]*models.TeamMember, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.MembersByEvent[eventID], nil
}

// MockTechnicianService is a mock implementation of TechnicianService
type MockTechnicianService struct {
	Links    map[string]*models.SchoolTechnician
	Schools  map[string]*models.School
	AddError error
	Err      error
}

func NewMockTechnicianService() *MockTechnicianService {
	return &MockTechnicianService{
		Links:   make(map[string]*models.SchoolTechnician),
		Schools: make(map[string]*models.School),
	}
}

func (m *MockTechnicianService) Add(ctx context.Context, schoolID, userID string, modalityIDs []string) (*models.SchoolTechnician, error) {
	if m.AddError != nil {
		return nil, m.AddError
	}
	if m.Err != nil {
		return nil, m.Err
	}
	link := &models.SchoolTechnician{
		ID:                 "link-" + schoolID + "-" + userID,
		SchoolID:           schoolID,
		UserID:             userID,
		AllowedModalityIDs: modalityIDs,
	}
	m.Links[link.ID] = link
	return link, nil
}

func (m *MockTechnicianService) UpdatePermissions(ctx context.Context, linkID string, modalityIDs []string) (*models.SchoolTechnician, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	link, ok := m.Links[linkID]
	if !ok {
		return nil, &service.NotFoundError{Kind: "technician link", ID: linkID}
	}
	link.AllowedModalityIDs = modalityIDs
	return link, nil
}

func (m *MockTechnicianService) Remove(ctx context.Context, linkID string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Links, linkID)
	return nil
}

func (m *MockTechnicianService) LinkEvents(ctx context.Context, schoolID string, eventIDs []string) (*models.School, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	school, ok := m.Schools[schoolID]
	if !ok {
		return nil, &service.NotFoundError{Kind: "school", ID: schoolID}
	}
	school.EventIDs = append(school.EventIDs, eventIDs...)
	return school, nil
}

// MockRegistryService is a mock implementation of RegistryService
type MockRegistryService struct {
	Users   map[string]*models.User
	Schools map[string]*models.School
	Err     error
}

func NewMockRegistryService() *MockRegistryService {
	return &MockRegistryService{
		Users:   make(map[string]*models.User),
		Schools: make(map[string]*models.School),
	}
}

func (m *MockRegistryService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if user.ID == "" {
		user.ID = "user-" + user.Name
	}
	m.Users[user.ID] = user
	return user, nil
}

func (m *MockRegistryService) CreateSchool(ctx context.Context, school *models.School) (*models.School, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if school.ID == "" {
		school.ID = "school-" + school.Name
	}
	m.Schools[school.ID] = school
	return school, nil
}
