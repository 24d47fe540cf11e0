package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/brandkitai/brandkit/internal/auth"
	"github.com/brandkitai/brandkit/internal/domain/brandkit"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
	"github.com/brandkitai/brandkit/internal/testutil"
)

type kitFixture struct {
	users    *testutil.MockUserRepository
	kits     *testutil.MockBrandKitRepository
	gen      *testutil.FakeGenerator
	userSvc  *UserService
	kitSvc   brandkit.Service
	identity auth.Identity
}

func newKitFixture(t *testing.T) *kitFixture {
	t.Helper()

	users := testutil.NewMockUserRepository()
	kits := testutil.NewMockBrandKitRepository(users)
	gen := &testutil.FakeGenerator{}
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	f := &kitFixture{
		users:    users,
		kits:     kits,
		gen:      gen,
		userSvc:  NewUserService(users, log).(*UserService),
		kitSvc:   NewBrandKitService(kits, users, gen, log, 0),
		identity: auth.Identity{Subject: "idp_owner", Email: "owner@example.com", Name: "Owner"},
	}

	if _, err := f.userSvc.SyncIdentity(context.Background(), f.identity); err != nil {
		t.Fatalf("SyncIdentity() error = %v", err)
	}
	return f
}

func sampleInput(name string) brandkit.CreateInput {
	industry := "dog grooming"
	return brandkit.CreateInput{
		BusinessName: name,
		Industry:     &industry,
		Vibe:         []string{"playful", "trustworthy"},
	}
}

func TestBrandKitService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   brandkit.CreateInput
		wantErr bool
	}{
		{
			name:    "valid kit",
			input:   sampleInput("Paw Palace"),
			wantErr: false,
		},
		{
			name:    "blank business name rejected",
			input:   brandkit.CreateInput{BusinessName: "   ", Vibe: []string{"bold"}},
			wantErr: true,
		},
		{
			name:    "empty vibe rejected",
			input:   brandkit.CreateInput{BusinessName: "Paw Palace"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newKitFixture(t)
			id, err := f.kitSvc.Create(context.Background(), f.identity, tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && id == 0 {
				t.Error("Create() returned 0 id")
			}
		})
	}
}

func TestBrandKitService_Create_FreePlanQuota(t *testing.T) {
	f := newKitFixture(t)
	ctx := context.Background()

	if _, err := f.kitSvc.Create(ctx, f.identity, sampleInput("First Brand")); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := f.kitSvc.Create(ctx, f.identity, sampleInput("Second Brand"))
	if err == nil {
		t.Fatal("second Create() on free plan should fail")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeQuotaExceeded {
		t.Errorf("expected QUOTA_EXCEEDED, got %v", err)
	}

	kits, _ := f.kitSvc.List(ctx, f.identity)
	if len(kits) != 1 {
		t.Errorf("rejected create must not persist a kit: have %d", len(kits))
	}
}

func TestBrandKitService_Create_ProPlanUnbounded(t *testing.T) {
	f := newKitFixture(t)
	ctx := context.Background()

	if err := f.userSvc.ChangePlan(ctx, f.identity, "pro"); err != nil {
		t.Fatalf("ChangePlan() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		if _, err := f.kitSvc.Create(ctx, f.identity, sampleInput(fmt.Sprintf("Brand %d", i))); err != nil {
			t.Fatalf("Create() #%d on pro plan error = %v", i, err)
		}
	}

	kits, _ := f.kitSvc.List(ctx, f.identity)
	if len(kits) != 5 {
		t.Errorf("expected 5 kits, got %d", len(kits))
	}
}

func TestBrandKitService_Create_ConcurrentQuota(t *testing.T) {
	f := newKitFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.kitSvc.Create(ctx, f.identity, sampleInput(fmt.Sprintf("Racer %d", i)))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	if succeeded != 1 {
		t.Errorf("free plan allowed %d concurrent creates, want 1", succeeded)
	}
}

func TestBrandKitService_List_NewestFirst(t *testing.T) {
	f := newKitFixture(t)
	ctx := context.Background()

	if err := f.userSvc.ChangePlan(ctx, f.identity, "pro"); err != nil {
		t.Fatalf("ChangePlan() error = %v", err)
	}

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := f.kitSvc.Create(ctx, f.identity, sampleInput(fmt.Sprintf("Brand %d", i)))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, id)
	}

	kits, err := f.kitSvc.List(ctx, f.identity)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(kits) != 3 {
		t.Fatalf("expected 3 kits, got %d", len(kits))
	}
	for i, kit := range kits {
		want := ids[len(ids)-1-i]
		if kit.ID != want {
			t.Errorf("kits[%d].ID = %d, want %d (newest first)", i, kit.ID, want)
		}
	}
}

func TestBrandKitService_List_UnsyncedCallerGetsEmpty(t *testing.T) {
	f := newKitFixture(t)

	kits, err := f.kitSvc.List(context.Background(), auth.Identity{Subject: "never_synced"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(kits) != 0 {
		t.Errorf("expected empty list, got %d kits", len(kits))
	}
}

func TestBrandKitService_Get_CrossUserForbidden(t *testing.T) {
	f := newKitFixture(t)
	ctx := context.Background()

	id, err := f.kitSvc.Create(ctx, f.identity, sampleInput("Paw Palace"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	other := auth.Identity{Subject: "idp_other", Email: "other@example.com"}
	if _, err := f.userSvc.SyncIdentity(ctx, other); err != nil {
		t.Fatalf("SyncIdentity() error = %v", err)
	}

	_, err = f.kitSvc.Get(ctx, other, id)
	if err == nil {
		t.Fatal("Get() by non-owner should fail")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeForbidden {
		t.Errorf("expected FORBIDDEN, got %v", err)
	}
}

func TestBrandKitService_Patch_MergesOnlyGivenFields(t *testing.T) {
	f := newKitFixture(t)
	ctx := context.Background()

	id, err := f.kitSvc.Create(ctx, f.identity, sampleInput("Paw Palace"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tagline := "Pawsome grooming, delivered."
	if err := f.kitSvc.Patch(ctx, f.identity, id, &brandkit.GeneratedPatch{Tagline: &tagline}); err != nil {
		t.Fatalf("first Patch() error = %v", err)
	}

	colors := []brandkit.Color{{Name: "Fern", Hex: "#4F7942", Role: brandkit.ColorRolePrimary}}
	if err := f.kitSvc.Patch(ctx, f.identity, id, &brandkit.GeneratedPatch{Colors: colors}); err != nil {
		t.Fatalf("second Patch() error = %v", err)
	}

	kit, err := f.kitSvc.Get(ctx, f.identity, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if kit.Tagline == nil || *kit.Tagline != tagline {
		t.Errorf("second patch clobbered tagline: got %v", kit.Tagline)
	}
	if len(kit.Colors) != 1 || kit.Colors[0].Hex != "#4F7942" {
		t.Errorf("colors not merged: got %v", kit.Colors)
	}
	if !kit.UpdatedAt.After(kit.CreatedAt) {
		t.Error("UpdatedAt not refreshed by patch")
	}
}

func TestBrandKitService_Patch_RejectsUnknownRoles(t *testing.T) {
	f := newKitFixture(t)
	ctx := context.Background()

	id, err := f.kitSvc.Create(ctx, f.identity, sampleInput("Paw Palace"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err = f.kitSvc.Patch(ctx, f.identity, id, &brandkit.GeneratedPatch{
		Colors: []brandkit.Color{{Name: "Mystery", Hex: "#112233", Role: "sparkle"}},
	})
	if err == nil {
		t.Error("Patch() accepted unknown color role")
	}

	err = f.kitSvc.Patch(ctx, f.identity, id, &brandkit.GeneratedPatch{
		Fonts: []brandkit.Font{{Name: "Inter", Role: "banner"}},
	})
	if err == nil {
		t.Error("Patch() accepted unknown font role")
	}
}

func TestBrandKitService_Patch_CrossUserDoesNotMutate(t *testing.T) {
	f := newKitFixture(t)
	ctx := context.Background()

	id, err := f.kitSvc.Create(ctx, f.identity, sampleInput("Paw Palace"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	other := auth.Identity{Subject: "idp_other", Email: "other@example.com"}
	if _, err := f.userSvc.SyncIdentity(ctx, other); err != nil {
		t.Fatalf("SyncIdentity() error = %v", err)
	}

	hostile := "Hacked"
	err = f.kitSvc.Patch(ctx, other, id, &brandkit.GeneratedPatch{Tagline: &hostile})
	if err == nil {
		t.Fatal("Patch() by non-owner should fail")
	}

	kit, _ := f.kitSvc.Get(ctx, f.identity, id)
	if kit.Tagline != nil {
		t.Errorf("forbidden patch mutated the kit: tagline = %q", *kit.Tagline)
	}
}

func TestBrandKitService_GenerateField(t *testing.T) {
	f := newKitFixture(t)
	ctx := context.Background()

	id, err := f.kitSvc.Create(ctx, f.identity, sampleInput("Paw Palace"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	f.gen.Chunks = []string{"Pawsome ", "grooming, ", "delivered."}

	text, err := f.kitSvc.GenerateField(ctx, f.identity, id, brandkit.FieldTagline)
	if err != nil {
		t.Fatalf("GenerateField() error = %v", err)
	}
	if text != "Pawsome grooming, delivered." {
		t.Errorf("GenerateField() = %q, want concatenation of all chunks", text)
	}

	if !strings.Contains(f.gen.LastPrompt, "Paw Palace") {
		t.Errorf("prompt missing business name: %q", f.gen.LastPrompt)
	}
	if !strings.Contains(f.gen.LastPrompt, "dog grooming") {
		t.Errorf("prompt missing industry: %q", f.gen.LastPrompt)
	}

	kit, _ := f.kitSvc.Get(ctx, f.identity, id)
	if kit.Tagline == nil || *kit.Tagline != text {
		t.Errorf("generated tagline not persisted: got %v", kit.Tagline)
	}
}

func TestBrandKitService_GenerateField_Errors(t *testing.T) {
	tests := []struct {
		name     string
		field    brandkit.GeneratableField
		genErr   error
		recvErr  error
		wantCode string
	}{
		{
			name:     "unknown field",
			field:    "logoConcept",
			wantCode: errors.ErrCodeBadRequest,
		},
		{
			name:     "upstream refuses stream",
			field:    brandkit.FieldTagline,
			genErr:   fmt.Errorf("upstream unavailable"),
			wantCode: errors.ErrCodeGeneration,
		},
		{
			name:     "stream breaks mid-flight",
			field:    brandkit.FieldBrandVoice,
			recvErr:  fmt.Errorf("connection reset"),
			wantCode: errors.ErrCodeGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newKitFixture(t)
			ctx := context.Background()

			id, err := f.kitSvc.Create(ctx, f.identity, sampleInput("Paw Palace"))
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			f.gen.Chunks = []string{"partial "}
			f.gen.Err = tt.genErr
			f.gen.RecvErr = tt.recvErr

			_, err = f.kitSvc.GenerateField(ctx, f.identity, id, tt.field)
			if err == nil {
				t.Fatal("GenerateField() expected error")
			}
			appErr, ok := err.(*errors.AppError)
			if !ok || appErr.Code != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}

			// A failed generation must leave the kit untouched
			kit, _ := f.kitSvc.Get(ctx, f.identity, id)
			if kit.Tagline != nil || kit.BrandVoice != nil {
				t.Error("failed generation persisted partial output")
			}
		})
	}
}
