package sqlite_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/brandkitai/brandkit/internal/domain/brandkit"
	"github.com/brandkitai/brandkit/internal/domain/user"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/repository/sqlite"
	"github.com/brandkitai/brandkit/internal/testutil"
)

func seedUser(t *testing.T, repo user.Repository, key, plan string) *user.User {
	t.Helper()
	u := &user.User{IdentityKey: key, Email: key + "@example.com", Plan: plan}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func sampleKit(userID int64, name string) *brandkit.BrandKit {
	industry := "coffee"
	return &brandkit.BrandKit{
		UserID:       userID,
		BusinessName: name,
		Industry:     &industry,
		Vibe:         []string{"warm", "minimal"},
	}
}

func TestBrandKitRepository_CreateWithQuota(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := sqlite.NewUserRepository(db)
	kits := sqlite.NewBrandKitRepository(db)
	ctx := context.Background()

	free := seedUser(t, users, "idp_free", user.PlanFree)
	pro := seedUser(t, users, "idp_pro", user.PlanPro)

	id, err := kits.CreateWithQuota(ctx, sampleKit(free.ID, "First"))
	if err != nil {
		t.Fatalf("CreateWithQuota() error = %v", err)
	}
	if id == 0 {
		t.Fatal("CreateWithQuota() returned 0 id")
	}

	// Second create for the free user hits the quota
	_, err = kits.CreateWithQuota(ctx, sampleKit(free.ID, "Second"))
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeQuotaExceeded {
		t.Fatalf("expected QUOTA_EXCEEDED, got %v", err)
	}

	// The rejected create must not bump the counter or leave a row
	reloaded, _ := users.GetByID(ctx, free.ID)
	if reloaded.BrandKitCount != 1 {
		t.Errorf("brand_kit_count = %d, want 1", reloaded.BrandKitCount)
	}
	list, _ := kits.ListByUser(ctx, free.ID)
	if len(list) != 1 {
		t.Errorf("free user has %d kits, want 1", len(list))
	}

	// Pro users are unbounded
	for i := 0; i < 3; i++ {
		if _, err := kits.CreateWithQuota(ctx, sampleKit(pro.ID, fmt.Sprintf("Pro %d", i))); err != nil {
			t.Fatalf("pro CreateWithQuota() #%d error = %v", i, err)
		}
	}

	// Unknown owner
	_, err = kits.CreateWithQuota(ctx, sampleKit(999, "Ghost"))
	appErr, ok = err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND for unknown owner, got %v", err)
	}
}

func TestBrandKitRepository_CreateWithQuota_Race(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := sqlite.NewUserRepository(db)
	kits := sqlite.NewBrandKitRepository(db)
	ctx := context.Background()

	free := seedUser(t, users, "idp_race", user.PlanFree)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = kits.CreateWithQuota(ctx, sampleKit(free.ID, fmt.Sprintf("Racer %d", i)))
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
		t.Errorf("%d concurrent creates succeeded on the free plan, want 1", succeeded)
	}

	list, _ := kits.ListByUser(ctx, free.ID)
	if len(list) != 1 {
		t.Errorf("free user ended with %d kits, want 1", len(list))
	}
}

func TestBrandKitRepository_GetByID_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := sqlite.NewUserRepository(db)
	kits := sqlite.NewBrandKitRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "idp_owner", user.PlanFree)
	id, err := kits.CreateWithQuota(ctx, sampleKit(owner.ID, "Beanhouse"))
	if err != nil {
		t.Fatalf("CreateWithQuota() error = %v", err)
	}

	got, err := kits.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.BusinessName != "Beanhouse" {
		t.Errorf("business name = %q", got.BusinessName)
	}
	if got.Industry == nil || *got.Industry != "coffee" {
		t.Errorf("industry = %v", got.Industry)
	}
	if len(got.Vibe) != 2 || got.Vibe[0] != "warm" {
		t.Errorf("vibe = %v", got.Vibe)
	}
	if got.Colors == nil || got.Fonts == nil {
		t.Error("colors and fonts must round-trip as empty slices, not nil")
	}
	if got.Tagline != nil {
		t.Errorf("tagline should start absent, got %q", *got.Tagline)
	}

	_, err = kits.GetByID(ctx, 999)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestBrandKitRepository_ListByUser_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := sqlite.NewUserRepository(db)
	kits := sqlite.NewBrandKitRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "idp_owner", user.PlanPro)
	other := seedUser(t, users, "idp_other", user.PlanPro)

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := kits.CreateWithQuota(ctx, sampleKit(owner.ID, fmt.Sprintf("Brand %d", i)))
		if err != nil {
			t.Fatalf("CreateWithQuota() error = %v", err)
		}
		ids = append(ids, id)
	}
	if _, err := kits.CreateWithQuota(ctx, sampleKit(other.ID, "Other Brand")); err != nil {
		t.Fatalf("CreateWithQuota() error = %v", err)
	}

	list, err := kits.ListByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 kits, got %d", len(list))
	}
	for i, kit := range list {
		want := ids[len(ids)-1-i]
		if kit.ID != want {
			t.Errorf("list[%d].ID = %d, want %d (newest first)", i, kit.ID, want)
		}
	}

	// A user with no kits gets an empty, non-nil slice
	empty, err := kits.ListByUser(ctx, 999)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty slice, got %v", empty)
	}
}

func TestBrandKitRepository_ApplyPatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := sqlite.NewUserRepository(db)
	kits := sqlite.NewBrandKitRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "idp_owner", user.PlanFree)
	id, err := kits.CreateWithQuota(ctx, sampleKit(owner.ID, "Beanhouse"))
	if err != nil {
		t.Fatalf("CreateWithQuota() error = %v", err)
	}

	tagline := "Slow coffee, fast friends."
	hero := "Your neighborhood coffee ritual"
	err = kits.ApplyPatch(ctx, id, &brandkit.GeneratedPatch{
		Tagline:     &tagline,
		WebsiteHero: &hero,
		Colors: []brandkit.Color{
			{Name: "Espresso", Hex: "#3B2F2F", Role: brandkit.ColorRolePrimary},
			{Name: "Cream", Hex: "#FFFDD0", Role: brandkit.ColorRoleBackground},
		},
		Fonts: []brandkit.Font{
			{Name: "Playfair Display", Role: brandkit.FontRoleHeading, Source: "google"},
		},
		WebsiteServices: []string{"Pour over", "Cold brew"},
	})
	if err != nil {
		t.Fatalf("ApplyPatch() error = %v", err)
	}

	got, _ := kits.GetByID(ctx, id)
	if got.Tagline == nil || *got.Tagline != tagline {
		t.Errorf("tagline = %v", got.Tagline)
	}
	if got.WebsiteHero == nil || *got.WebsiteHero != hero {
		t.Errorf("website hero = %v", got.WebsiteHero)
	}
	if len(got.Colors) != 2 || got.Colors[1].Role != brandkit.ColorRoleBackground {
		t.Errorf("colors = %v", got.Colors)
	}
	if len(got.Fonts) != 1 || got.Fonts[0].Name != "Playfair Display" {
		t.Errorf("fonts = %v", got.Fonts)
	}
	if len(got.WebsiteServices) != 2 {
		t.Errorf("website services = %v", got.WebsiteServices)
	}

	// A later patch leaves earlier fields alone
	summary := "A cozy espresso bar."
	if err := kits.ApplyPatch(ctx, id, &brandkit.GeneratedPatch{BrandSummary: &summary}); err != nil {
		t.Fatalf("second ApplyPatch() error = %v", err)
	}
	got, _ = kits.GetByID(ctx, id)
	if got.Tagline == nil || *got.Tagline != tagline {
		t.Error("second patch clobbered the tagline")
	}
	if got.BrandSummary == nil || *got.BrandSummary != summary {
		t.Errorf("brand summary = %v", got.BrandSummary)
	}

	err = kits.ApplyPatch(ctx, 999, &brandkit.GeneratedPatch{Tagline: &tagline})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestBrandKitRepository_SetGeneratedField(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := sqlite.NewUserRepository(db)
	kits := sqlite.NewBrandKitRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "idp_owner", user.PlanFree)
	id, err := kits.CreateWithQuota(ctx, sampleKit(owner.ID, "Beanhouse"))
	if err != nil {
		t.Fatalf("CreateWithQuota() error = %v", err)
	}

	if err := kits.SetGeneratedField(ctx, id, brandkit.FieldBrandVoice, "Warm and unhurried."); err != nil {
		t.Fatalf("SetGeneratedField() error = %v", err)
	}

	got, _ := kits.GetByID(ctx, id)
	if got.BrandVoice == nil || *got.BrandVoice != "Warm and unhurried." {
		t.Errorf("brand voice = %v", got.BrandVoice)
	}

	err = kits.SetGeneratedField(ctx, 999, brandkit.FieldTagline, "x")
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
