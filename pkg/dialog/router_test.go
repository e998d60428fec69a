package dialog

import (
	"context"
	"errors"
	"io"
	"log"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/advisor"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/nlp/extractor"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/nlp/intent"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/store"
)

// mapStore is an in-memory ContextStore for tests.
type mapStore struct {
	contexts map[string]*store.Context
}

func newMapStore() *mapStore {
	return &mapStore{contexts: make(map[string]*store.Context)}
}

func (s *mapStore) Get(sessionID string) (*store.Context, bool) {
	c, ok := s.contexts[sessionID]
	return c, ok
}

func (s *mapStore) Save(c *store.Context)   { s.contexts[c.SessionID] = c }
func (s *mapStore) Delete(sessionID string) { delete(s.contexts, sessionID) }

// fakeClassifier returns whatever the test scripted.
type fakeClassifier struct {
	tag  string
	conf float64
	err  error
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) (string, float64, error) {
	return f.tag, f.conf, f.err
}

// fakeCatalog serves a fixed snapshot.
type fakeCatalog struct {
	catalog advisor.Catalog
	attrs   *advisor.TrackAttributes
	err     error
}

func (f *fakeCatalog) GetCourse(ctx context.Context, code string) (*advisor.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog[code], nil
}

func (f *fakeCatalog) GetPrerequisites(ctx context.Context, code string) ([]advisor.Prerequisite, error) {
	if f.err != nil {
		return nil, f.err
	}
	course, ok := f.catalog[code]
	if !ok {
		return nil, nil
	}
	var prereqs []advisor.Prerequisite
	for p := range course.Prereqs {
		name := ""
		if pc, ok := f.catalog[p]; ok {
			name = pc.Name
		}
		prereqs = append(prereqs, advisor.Prerequisite{Code: p, Name: name})
	}
	sort.Slice(prereqs, func(i, j int) bool { return prereqs[i].Code < prereqs[j].Code })
	return prereqs, nil
}

func (f *fakeCatalog) Snapshot(ctx context.Context) (advisor.Catalog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func (f *fakeCatalog) TrackAttributes(ctx context.Context) (*advisor.TrackAttributes, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.attrs, nil
}

func (f *fakeCatalog) FindInstructor(ctx context.Context, text string) (*advisor.Instructor, error) {
	if f.err != nil {
		return nil, f.err
	}
	if strings.Contains(strings.ToLower(text), "adam") {
		return &advisor.Instructor{Name: "Adam Omar", OfficeLocation: "C204", Email: "adam@uni.edu"}, nil
	}
	return nil, nil
}

func testFixture() *fakeCatalog {
	return &fakeCatalog{
		catalog: advisor.Catalog{
			"CS116":   {Code: "CS116", Name: "Computing Fundamentals", CreditHours: 3, Prereqs: advisor.NewCodeSet()},
			"CS222":   {Code: "CS222", Name: "Theory of Algorithms", CreditHours: 3, Prereqs: advisor.NewCodeSet("CS116")},
			"CS323":   {Code: "CS323", Name: "Operating Systems", CreditHours: 3, Prereqs: advisor.NewCodeSet("CS222", "CS241")},
			"CS241":   {Code: "CS241", Name: "Computer Architecture", CreditHours: 3, Prereqs: advisor.NewCodeSet("CS116")},
			"MATH101": {Code: "MATH101", Name: "Calculus I", CreditHours: 3, Prereqs: advisor.NewCodeSet()},
		},
		attrs: &advisor.TrackAttributes{
			CommonCompulsory: advisor.NewCodeSet("CS116", "CS222", "MATH101"),
			Tracks: map[string]advisor.TrackRequirements{
				advisor.TrackGeneral:     {Compulsory: advisor.NewCodeSet("CS323"), Electives: advisor.NewCodeSet("CS241")},
				advisor.TrackDataScience: {Compulsory: advisor.NewCodeSet(), Electives: advisor.NewCodeSet()},
			},
		},
	}
}

func newTestRouter(catalog CatalogStore, classifier intent.Classifier) (*Router, *ContextManager) {
	ex := extractor.New()
	contexts := NewContextManager(newMapStore(), ex, 120*time.Second)
	adv := advisor.New(advisor.DefaultConfig())
	logger := log.New(io.Discard, "", 0)
	return NewRouter(contexts, catalog, adv, classifier, ex, 0.45, logger), contexts
}

func TestEligibilityFlow(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.CheckEligibility, conf: 0.9}
	r, _ := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	// No passed courses yet: the router must ask for them.
	reply := r.HandleTurn(ctx, "s1", "can I take CS222?")
	if reply.State != store.StatusWaitingForEligibility {
		t.Fatalf("State = %q, want waiting_for_eligibility", reply.State)
	}
	if !strings.Contains(reply.Text, "CS222") {
		t.Errorf("reply %q does not name the target", reply.Text)
	}

	// Supplying the courses completes the check.
	classifier.tag = intent.Unknown
	classifier.conf = 0.9
	reply = r.HandleTurn(ctx, "s1", "I passed CS116")
	if reply.State != store.StatusIdle {
		t.Errorf("State = %q, want idle", reply.State)
	}
	if !strings.Contains(reply.Text, "Eligible") || strings.Contains(reply.Text, "Not Eligible") {
		t.Errorf("reply = %q, want eligible verdict", reply.Text)
	}
}

func TestEligibilityOffersPrereqChain(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.CheckEligibility, conf: 0.9}
	r, contexts := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	// Pre-seed passed courses so the verdict runs immediately.
	c := contexts.GetOrCreate("s2")
	c.AddPassed("MATH101")
	contexts.Save(c)

	reply := r.HandleTurn(ctx, "s2", "am I eligible for CS222?")
	if reply.State != store.StatusWaitingForConfirmation {
		t.Fatalf("State = %q, want waiting_for_prereq_confirmation", reply.State)
	}
	if !strings.Contains(reply.Text, "Not Eligible") || !strings.Contains(reply.Text, "prerequisites for **CS116**") {
		t.Errorf("reply = %q", reply.Text)
	}

	// Affirming chains into the prerequisite lookup for the missing course.
	classifier.tag = intent.Affirm
	reply = r.HandleTurn(ctx, "s2", "yes please")
	if reply.State != store.StatusIdle {
		t.Errorf("State = %q, want idle", reply.State)
	}
	if !strings.Contains(reply.Text, "no prerequisites") {
		t.Errorf("reply = %q, want no-prerequisites message for CS116", reply.Text)
	}
}

func TestEligibilityConfirmationDeny(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.CheckEligibility, conf: 0.9}
	r, contexts := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	c := contexts.GetOrCreate("s3")
	c.AddPassed("MATH101")
	contexts.Save(c)

	r.HandleTurn(ctx, "s3", "am I eligible for CS222?")

	classifier.tag = intent.Deny
	reply := r.HandleTurn(ctx, "s3", "no thanks")
	if reply.State != store.StatusIdle {
		t.Errorf("State = %q, want idle", reply.State)
	}
	if reply.Text != msgAcknowledge {
		t.Errorf("reply = %q, want acknowledgement", reply.Text)
	}
}

func TestScheduleFlowThroughTrackAndCourses(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.MakeSchedule, conf: 0.9}
	r, _ := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	reply := r.HandleTurn(ctx, "s4", "plan my semester")
	if reply.State != store.StatusWaitingForTrack {
		t.Fatalf("State = %q, want waiting_for_track", reply.State)
	}

	// Track given, no courses yet: chained transition.
	classifier.tag = intent.Unknown
	reply = r.HandleTurn(ctx, "s4", "General")
	if reply.State != store.StatusWaitingForCourses {
		t.Fatalf("State = %q, want waiting_for_courses", reply.State)
	}

	reply = r.HandleTurn(ctx, "s4", "I passed CS116 and MATH101")
	if reply.State != store.StatusIdle {
		t.Errorf("State = %q, want idle", reply.State)
	}
	if !strings.Contains(reply.Text, "Semester Plan for General") {
		t.Errorf("reply = %q, want a semester plan", reply.Text)
	}
	// CS222 is open (CS116 passed) and compulsory, so it must appear.
	if !strings.Contains(reply.Text, "CS222") {
		t.Errorf("plan %q missing CS222", reply.Text)
	}
}

func TestTrackGivenWithCoursesAlreadyKnown(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.MakeSchedule, conf: 0.9}
	r, contexts := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	reply := r.HandleTurn(ctx, "s5", "make me a schedule, I passed CS116 and MATH101")
	if reply.State != store.StatusWaitingForTrack {
		t.Fatalf("State = %q, want waiting_for_track", reply.State)
	}
	c, _ := contexts.store.Get("s5")
	if !c.HasPassed("CS116") || !c.HasPassed("MATH101") {
		t.Fatal("passed courses not captured from the scheduling request")
	}

	// With the passed set already known, naming the track plans directly.
	classifier.tag = intent.Unknown
	reply = r.HandleTurn(ctx, "s5", "General")
	if reply.State != store.StatusIdle {
		t.Errorf("State = %q, want idle", reply.State)
	}
	if !strings.Contains(reply.Text, "Semester Plan") {
		t.Errorf("reply = %q, want a plan", reply.Text)
	}
}

func TestGraduationFlow(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.GraduationCheck, conf: 0.9}
	r, _ := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	reply := r.HandleTurn(ctx, "s6", "when will I graduate?")
	if reply.State != store.StatusWaitingForGradInfo {
		t.Fatalf("State = %q, want waiting_for_graduation_info", reply.State)
	}

	classifier.tag = intent.Unknown
	reply = r.HandleTurn(ctx, "s6", "Data Science, passed CS116 and MATH101")
	if reply.State != store.StatusIdle {
		t.Errorf("State = %q, want idle", reply.State)
	}
	if !strings.Contains(reply.Text, "Graduation Status (Data Science)") {
		t.Errorf("reply = %q, want graduation report", reply.Text)
	}
}

func TestKeywordRecoveryOnLowConfidence(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.Greeting, conf: 0.2}
	r, _ := newTestRouter(testFixture(), classifier)

	reply := r.HandleTurn(context.Background(), "s7", "can I take CS116?")
	if reply.Intent != intent.CheckEligibility {
		t.Errorf("Intent = %q, want keyword-recovered check_eligibility", reply.Intent)
	}
}

func TestKeywordRecoveryOnClassifierError(t *testing.T) {
	classifier := &fakeClassifier{err: errors.New("connection refused")}
	r, _ := newTestRouter(testFixture(), classifier)

	reply := r.HandleTurn(context.Background(), "s8", "what are the prereqs of CS222?")
	if reply.Intent != intent.AskPrereqs {
		t.Errorf("Intent = %q, want ask_prereqs", reply.Intent)
	}
	if !strings.Contains(reply.Text, "CS116") {
		t.Errorf("reply = %q, want CS116 listed", reply.Text)
	}
}

func TestPendingIntentReplay(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.AskPrereqs, conf: 0.9}
	r, _ := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	reply := r.HandleTurn(ctx, "s9", "what are the prerequisites?")
	if reply.State != store.StatusWaitingForCourse {
		t.Fatalf("State = %q, want waiting_for_specific_course", reply.State)
	}

	// Naming the course replays the stored intent.
	classifier.tag = intent.Unknown
	reply = r.HandleTurn(ctx, "s9", "CS323")
	if reply.State != store.StatusIdle {
		t.Errorf("State = %q, want idle", reply.State)
	}
	if !strings.Contains(reply.Text, "Prerequisites for CS323") {
		t.Errorf("reply = %q", reply.Text)
	}
}

func TestTopicChangeBreaksWaitingState(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.MakeSchedule, conf: 0.9}
	r, _ := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	reply := r.HandleTurn(ctx, "s10", "plan my semester")
	if reply.State != store.StatusWaitingForTrack {
		t.Fatalf("State = %q, want waiting_for_track", reply.State)
	}

	// Asking about a course abandons the planning flow.
	classifier.tag = intent.AskCourseInfo
	reply = r.HandleTurn(ctx, "s10", "tell me about CS116")
	if reply.State != store.StatusIdle {
		t.Errorf("State = %q, want idle after topic change", reply.State)
	}
	if !strings.Contains(reply.Text, "Computing Fundamentals") {
		t.Errorf("reply = %q, want course card", reply.Text)
	}
}

func TestLastEntityCarriesTopic(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.AskCourseInfo, conf: 0.9}
	r, _ := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	r.HandleTurn(ctx, "s11", "tell me about CS222")

	// "its prerequisites" resolves against the last-mentioned course.
	classifier.tag = intent.AskPrereqs
	reply := r.HandleTurn(ctx, "s11", "and what are its prerequisites?")
	if !strings.Contains(reply.Text, "Prerequisites for CS222") {
		t.Errorf("reply = %q, want CS222 resolved from context", reply.Text)
	}
}

func TestInstructorLookup(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.AskInstructorInfo, conf: 0.9}
	r, _ := newTestRouter(testFixture(), classifier)

	reply := r.HandleTurn(context.Background(), "s12", "where is Dr. Adam?")
	if !strings.Contains(reply.Text, "Adam Omar") || !strings.Contains(reply.Text, "C204") {
		t.Errorf("reply = %q, want instructor card", reply.Text)
	}

	reply = r.HandleTurn(context.Background(), "s12", "where is Dr. Nobody?")
	if !strings.Contains(reply.Text, "couldn't find") {
		t.Errorf("reply = %q, want not-found message", reply.Text)
	}
}

func TestCatalogUnreachableDegrades(t *testing.T) {
	broken := testFixture()
	broken.err = errors.New("connection refused")
	classifier := &fakeClassifier{tag: intent.AskCourseInfo, conf: 0.9}
	r, _ := newTestRouter(broken, classifier)

	reply := r.HandleTurn(context.Background(), "s13", "tell me about CS116")
	if reply.Text != msgCatalogUnreachable {
		t.Errorf("reply = %q, want catalog-unreachable apology", reply.Text)
	}
	if reply.State != store.StatusIdle {
		t.Errorf("State = %q, want idle (no state corruption)", reply.State)
	}
}

func TestSmalltalkAndUnknown(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.Greeting, conf: 0.9}
	r, _ := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	reply := r.HandleTurn(ctx, "s14", "hello")
	if reply.Text == msgUnknown || reply.Text == "" {
		t.Errorf("reply = %q, want greeting response", reply.Text)
	}

	classifier.tag = intent.Unknown
	reply = r.HandleTurn(ctx, "s14", "xyzzy")
	if reply.Text != msgUnknown {
		t.Errorf("reply = %q, want unknown fallback", reply.Text)
	}
}

func TestSessionExpiryPreservesProfile(t *testing.T) {
	ex := extractor.New()
	contexts := NewContextManager(newMapStore(), ex, 120*time.Second)

	// A session stuck mid-flow, then a long pause.
	c := contexts.GetOrCreate("s15")
	c.Status = store.StatusWaitingForCourses
	c.Track = advisor.TrackGeneral
	c.TargetCourse = "CS222"
	c.AddPassed("CS116")
	c.LastInteraction = time.Now().Add(-10 * time.Minute)
	contexts.Save(c)

	c = contexts.GetOrCreate("s15")
	if c.Status != store.StatusIdle {
		t.Errorf("Status = %q, want idle after expiry", c.Status)
	}
	if c.Track != advisor.TrackGeneral {
		t.Errorf("Track = %q, want preserved across expiry", c.Track)
	}
	if !c.HasPassed("CS116") {
		t.Error("passed courses lost on expiry")
	}
	if c.TargetCourse != "" {
		t.Errorf("TargetCourse = %q, want cleared on expiry", c.TargetCourse)
	}
}

func TestUpdatePassedCoursesIdempotent(t *testing.T) {
	ex := extractor.New()
	contexts := NewContextManager(newMapStore(), ex, time.Minute)
	c := contexts.GetOrCreate("s16")

	text := "I passed CS116 and MATH101, my track is Data Science"
	if track := ex.ExtractTrack(text); track != advisor.TrackDataScience {
		t.Errorf("ExtractTrack = %q, want Data Science", track)
	}

	added := contexts.UpdatePassedCourses(c, text)
	if len(added) != 2 {
		t.Fatalf("added = %v, want [CS116 MATH101]", added)
	}
	sizeAfterOne := len(c.PassedCourses)

	// Remedials ride along once codes are listed.
	for code := range advisor.RemedialCodes {
		if !c.HasPassed(code) {
			t.Errorf("remedial %s not injected", code)
		}
	}
	if sizeAfterOne != 2+len(advisor.RemedialCodes) {
		t.Errorf("passed size = %d, want %d", sizeAfterOne, 2+len(advisor.RemedialCodes))
	}

	added = contexts.UpdatePassedCourses(c, text)
	if len(added) != 0 {
		t.Errorf("second call added %v, want nothing", added)
	}
	if len(c.PassedCourses) != sizeAfterOne {
		t.Errorf("passed size changed on repeat: %d -> %d", sizeAfterOne, len(c.PassedCourses))
	}
}

func TestConcurrentTurnsSameSession(t *testing.T) {
	classifier := &fakeClassifier{tag: intent.MakeSchedule, conf: 0.9}
	r, contexts := newTestRouter(testFixture(), classifier)
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			r.HandleTurn(ctx, "s17", "I passed CS116 and MATH101")
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	c, _ := contexts.store.Get("s17")
	if !c.HasPassed("CS116") || !c.HasPassed("MATH101") {
		t.Error("concurrent turns lost passed-course updates")
	}
}
