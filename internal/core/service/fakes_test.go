package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
	"github.com/dailymate/dailymate-api/internal/infrastructure/hashing"
)

// ---- Hasher ----

func newTestHasher(t *testing.T) *hashing.Pool {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	p := hashing.NewPool(2, bcrypt.MinCost, zerolog.Nop())
	p.Start(ctx)
	return p
}

// ---- Accounts ----

type stubAccountRepo struct {
	mu        sync.Mutex
	seq       int
	accounts  map[string]*domain.Account
	deleted   []string
	deleteErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	created := cloneAccount(a)
	created.ID = fmt.Sprintf("acc-%d", r.seq)
	r.accounts[created.ID] = created
	return cloneAccount(created), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == domain.NormalizeEmail(email) {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.accounts, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubAccountRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (r *stubAccountRepo) MarkVerified(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.IsVerified = true
	return nil
}

func (r *stubAccountRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

// ---- Profiles ----

type stubProfileRepo struct {
	mu           sync.Mutex
	seq          int
	byAccount    map[domain.Role]map[string]domain.Profile
	insertErr    error
	deleteErr    error
	beforeInsert func()
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byAccount: map[domain.Role]map[string]domain.Profile{
		domain.RoleParent:  {},
		domain.RoleKid:     {},
		domain.RoleTeacher: {},
		domain.RoleAdmin:   {},
	}}
}

func (r *stubProfileRepo) Insert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	if r.beforeInsert != nil {
		r.beforeInsert()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("%s-%d", p.Role(), r.seq)
	var out domain.Profile
	switch v := p.(type) {
	case *domain.ParentProfile:
		c := *v
		c.ID = id
		out = &c
	case *domain.KidProfile:
		c := *v
		c.ID = id
		out = &c
	case *domain.TeacherProfile:
		c := *v
		c.ID = id
		out = &c
	case *domain.AdminProfile:
		c := *v
		c.ID = id
		out = &c
	}
	r.byAccount[p.Role()][p.Owner()] = out
	return out, nil
}

func (r *stubProfileRepo) FindByAccount(_ context.Context, role domain.Role, accountID string) (domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byAccount[role][accountID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *stubProfileRepo) DeleteByAccount(_ context.Context, role domain.Role, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byAccount[role], accountID)
	return nil
}

func (r *stubProfileRepo) FindKid(_ context.Context, id string) (*domain.KidProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byAccount[domain.RoleKid] {
		if k := p.(*domain.KidProfile); k.ID == id {
			c := *k
			return &c, nil
		}
	}
	return nil, domain.ErrKidNotFound
}

func (r *stubProfileRepo) UpdateKid(_ context.Context, kid *domain.KidProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for acc, p := range r.byAccount[domain.RoleKid] {
		if k := p.(*domain.KidProfile); k.ID == kid.ID {
			c := *kid
			c.AccountID = k.AccountID
			r.byAccount[domain.RoleKid][acc] = &c
			return nil
		}
	}
	return domain.ErrKidNotFound
}

func (r *stubProfileRepo) DeleteKid(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for acc, p := range r.byAccount[domain.RoleKid] {
		if p.(*domain.KidProfile).ID == id {
			delete(r.byAccount[domain.RoleKid], acc)
		}
	}
	return nil
}

func (r *stubProfileRepo) ListKidsByParent(_ context.Context, parentID string) ([]*domain.KidProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kids []*domain.KidProfile
	for _, p := range r.byAccount[domain.RoleKid] {
		if k := p.(*domain.KidProfile); k.ParentID == parentID {
			c := *k
			kids = append(kids, &c)
		}
	}
	sort.Slice(kids, func(i, j int) bool { return kids[i].ID < kids[j].ID })
	return kids, nil
}

func (r *stubProfileRepo) FindParent(_ context.Context, id string) (*domain.ParentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byAccount[domain.RoleParent] {
		if pp := p.(*domain.ParentProfile); pp.ID == id {
			c := *pp
			return &c, nil
		}
	}
	return nil, domain.ErrParentNotFound
}

func (r *stubProfileRepo) teacher(id string) *domain.TeacherProfile {
	for _, p := range r.byAccount[domain.RoleTeacher] {
		if t := p.(*domain.TeacherProfile); t.ID == id {
			return t
		}
	}
	return nil
}

func (r *stubProfileRepo) AddTeacherCourse(_ context.Context, teacherID, courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.teacher(teacherID)
	if t == nil {
		return domain.ErrTeacherNotFound
	}
	for _, c := range t.CoursesCreated {
		if c == courseID {
			return nil
		}
	}
	t.CoursesCreated = append(t.CoursesCreated, courseID)
	return nil
}

func (r *stubProfileRepo) RemoveTeacherCourse(_ context.Context, teacherID, courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.teacher(teacherID)
	if t == nil {
		return domain.ErrTeacherNotFound
	}
	kept := t.CoursesCreated[:0]
	for _, c := range t.CoursesCreated {
		if c != courseID {
			kept = append(kept, c)
		}
	}
	t.CoursesCreated = kept
	return nil
}

func (r *stubProfileRepo) count(role domain.Role) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byAccount[role])
}

// ---- Sessions ----

type stubSessionStore struct {
	mu       sync.Mutex
	seq      int
	sessions map[string]string
	touched  []string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Create(_ context.Context, accountID string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	id := fmt.Sprintf("sess-%d", s.seq)
	s.sessions[id] = accountID
	return id, nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.sessions[id]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return acc, nil
}

func (s *stubSessionStore) Touch(_ context.Context, id string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	s.touched = append(s.touched, id)
	return nil
}

func (s *stubSessionStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// ---- Verification codes ----

type stubCodeRepo struct {
	mu    sync.Mutex
	codes map[string]*domain.VerificationCode
}

func newStubCodeRepo() *stubCodeRepo {
	return &stubCodeRepo{codes: make(map[string]*domain.VerificationCode)}
}

func (r *stubCodeRepo) Replace(_ context.Context, code *domain.VerificationCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *code
	r.codes[code.Email] = &c
	return nil
}

func (r *stubCodeRepo) Consume(_ context.Context, email, code string, purpose domain.CodePurpose, now time.Time) (*domain.VerificationCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.codes[email]
	if !ok || c.Code != code || c.Purpose != purpose || c.Expired(now) {
		return nil, domain.ErrInvalidOrExpiredCode
	}
	delete(r.codes, email)
	return c, nil
}

func (r *stubCodeRepo) DeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.codes, email)
	return nil
}

func (r *stubCodeRepo) get(email string) *domain.VerificationCode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.codes[email]
}

// ---- Mailer ----

type sentMail struct {
	To      string
	Code    string
	Purpose domain.CodePurpose
}

type stubMailer struct {
	sent []sentMail
	err  error
}

func (m *stubMailer) SendVerificationCode(_ context.Context, to, code string, purpose domain.CodePurpose) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Code: code, Purpose: purpose})
	return nil
}

func (m *stubMailer) last() sentMail {
	if len(m.sent) == 0 {
		return sentMail{}
	}
	return m.sent[len(m.sent)-1]
}

// ---- Courses ----

type stubCourseRepo struct {
	mu      sync.Mutex
	seq     int
	courses map[string]*domain.Course
	lastq   ports.ListCoursesFilter
}

func newStubCourseRepo() *stubCourseRepo {
	return &stubCourseRepo{courses: make(map[string]*domain.Course)}
}

func (r *stubCourseRepo) Create(_ context.Context, c *domain.Course) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	created := *c
	created.ID = fmt.Sprintf("course-%d", r.seq)
	r.courses[created.ID] = &created
	out := created
	return &out, nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	out := *c
	return &out, nil
}

func (r *stubCourseRepo) Update(_ context.Context, c *domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[c.ID]; !ok {
		return domain.ErrCourseNotFound
	}
	stored := *c
	r.courses[c.ID] = &stored
	return nil
}

func (r *stubCourseRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *stubCourseRepo) List(_ context.Context, f ports.ListCoursesFilter) ([]*domain.Course, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastq = f
	var all []*domain.Course
	for _, c := range r.courses {
		if f.IsPublished != nil && c.IsPublished != *f.IsPublished {
			continue
		}
		out := *c
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	start := (f.Page - 1) * f.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// ---- Lessons ----

type stubLessonRepo struct {
	mu      sync.Mutex
	seq     int
	lessons map[string]*domain.Lesson
	lastq   ports.ListLessonsFilter
}

func newStubLessonRepo() *stubLessonRepo {
	return &stubLessonRepo{lessons: make(map[string]*domain.Lesson)}
}

func (r *stubLessonRepo) Create(_ context.Context, l *domain.Lesson) (*domain.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	created := *l
	created.ID = fmt.Sprintf("lesson-%d", r.seq)
	r.lessons[created.ID] = &created
	out := created
	return &out, nil
}

func (r *stubLessonRepo) FindByID(_ context.Context, id string) (*domain.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lessons[id]
	if !ok {
		return nil, domain.ErrLessonNotFound
	}
	out := *l
	return &out, nil
}

func (r *stubLessonRepo) Update(_ context.Context, l *domain.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lessons[l.ID]; !ok {
		return domain.ErrLessonNotFound
	}
	stored := *l
	r.lessons[l.ID] = &stored
	return nil
}

func (r *stubLessonRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lessons[id]; !ok {
		return domain.ErrLessonNotFound
	}
	delete(r.lessons, id)
	return nil
}

func (r *stubLessonRepo) List(_ context.Context, f ports.ListLessonsFilter) ([]*domain.Lesson, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastq = f
	var all []*domain.Lesson
	for _, l := range r.lessons {
		if l.CourseID != f.CourseID || (f.IsPublished != nil && l.IsPublished != *f.IsPublished) {
			continue
		}
		out := *l
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Order < all[j].Order })
	return pageOf(all, f.Page, f.Limit)
}

func (r *stubLessonRepo) IDsByCourse(_ context.Context, courseID string, publishedOnly bool) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, l := range r.lessons {
		if l.CourseID == courseID && (!publishedOnly || l.IsPublished) {
			ids = append(ids, l.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// ---- Tests ----

type stubAssessmentRepo struct {
	mu          sync.Mutex
	seq         int
	assessments map[string]*domain.Assessment
	lastq       ports.ListAssessmentsFilter
	lists       int
	deleteErr   error
}

func newStubAssessmentRepo() *stubAssessmentRepo {
	return &stubAssessmentRepo{assessments: make(map[string]*domain.Assessment)}
}

func (r *stubAssessmentRepo) Create(_ context.Context, a *domain.Assessment) (*domain.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	created := *a
	created.ID = fmt.Sprintf("test-%d", r.seq)
	r.assessments[created.ID] = &created
	out := created
	return &out, nil
}

func (r *stubAssessmentRepo) FindByID(_ context.Context, id string) (*domain.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assessments[id]
	if !ok {
		return nil, domain.ErrAssessmentNotFound
	}
	out := *a
	return &out, nil
}

func (r *stubAssessmentRepo) Update(_ context.Context, a *domain.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assessments[a.ID]; !ok {
		return domain.ErrAssessmentNotFound
	}
	stored := *a
	r.assessments[a.ID] = &stored
	return nil
}

func (r *stubAssessmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assessments[id]; !ok {
		return domain.ErrAssessmentNotFound
	}
	delete(r.assessments, id)
	return nil
}

func (r *stubAssessmentRepo) DeleteByLesson(_ context.Context, lessonID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	var n int64
	for id, a := range r.assessments {
		if a.LessonID == lessonID {
			delete(r.assessments, id)
			n++
		}
	}
	return n, nil
}

func (r *stubAssessmentRepo) List(_ context.Context, f ports.ListAssessmentsFilter) ([]*domain.Assessment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastq = f
	r.lists++
	var all []*domain.Assessment
	for _, a := range r.assessments {
		for _, id := range f.LessonIDs {
			if a.LessonID == id {
				out := *a
				all = append(all, &out)
				break
			}
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return pageOf(all, f.Page, f.Limit)
}

// ---- Helpers ----

// pageOf slices one 1-based page out of all.
func pageOf[T any](all []T, page, limit int) ([]T, int64, error) {
	total := int64(len(all))
	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

type countingTx struct{ calls int }

func (t *countingTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

var errBoom = errors.New("boom")

func mustProvision[T any](t *testing.T, fn func(context.Context, T) (*ports.ProvisionResult, error), in T) *ports.ProvisionResult {
	t.Helper()
	res, err := fn(context.Background(), in)
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	return res
}
