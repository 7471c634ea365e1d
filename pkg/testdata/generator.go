package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/preset"
	"github.com/jordanlanch/touchpoint/pkg/subscription"
	"github.com/jordanlanch/touchpoint/pkg/touch"
)

// GeneratorConfig configures demo data generation.
type GeneratorConfig struct {
	Presets       int
	Subscriptions int
	ResolveChance float64 // 0.0-1.0 probability a due touch gets resolved
}

// DefaultConfig is a small but representative demo data set.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Presets:       4,
		Subscriptions: 25,
		ResolveChance: 0.4,
	}
}

var presetNames = []string{
	"New Client Welcome", "Quarterly Check-In", "Win-Back", "Post-Sale Follow-Up",
	"Referral Thank You", "Renewal Countdown", "Cold Lead Revival",
}

var entityTypes = []string{"lead", "customer", "contact"}

var outcomes = []string{"reached", "voicemail", "no_answer", "replied", "bounced"}

// Generator seeds demo presets, subscriptions and touch activity through the
// regular services, so the generated data respects every engine invariant and
// leaves a believable activity trail.
type Generator struct {
	presets *preset.Service
	subs    *subscription.Service
	touches *touch.Service
	rng     *rand.Rand
	faker   *gofakeit.Faker
}

// NewGenerator creates a demo data generator over the engine services.
func NewGenerator(presets *preset.Service, subs *subscription.Service, touches *touch.Service, seed int64) *Generator {
	return &Generator{
		presets: presets,
		subs:    subs,
		touches: touches,
		rng:     rand.New(rand.NewSource(seed)),
		faker:   gofakeit.New(seed),
	}
}

// Generate seeds the database. Returns the number of presets and
// subscriptions created.
func (g *Generator) Generate(ctx context.Context, cfg GeneratorConfig) (int, int, error) {
	presetIDs := make([]int, 0, cfg.Presets)
	for i := 0; i < cfg.Presets; i++ {
		resp, err := g.presets.CreatePreset(ctx, 0, g.presetRequest(i))
		if err != nil {
			return len(presetIDs), 0, fmt.Errorf("failed to create preset: %w", err)
		}
		presetIDs = append(presetIDs, resp.ID)
	}

	created := 0
	for i := 0; i < cfg.Subscriptions; i++ {
		presetID := presetIDs[g.rng.Intn(len(presetIDs))]
		sub, err := g.subs.Activate(ctx, 0, g.activateRequest(presetID))
		if err != nil {
			return len(presetIDs), created, fmt.Errorf("failed to activate subscription: %w", err)
		}
		created++

		if err := g.workTouches(ctx, sub.ID, cfg.ResolveChance); err != nil {
			return len(presetIDs), created, err
		}
	}

	return len(presetIDs), created, nil
}

func (g *Generator) presetRequest(i int) preset.CreatePresetRequest {
	name := presetNames[i%len(presetNames)]
	behaviors := []string{"one_time", "auto_repeat", "user_defined"}

	steps := make([]preset.StepRequest, 0, 4)
	offset := 0
	for s := 0; s < 2+g.rng.Intn(3); s++ {
		steps = append(steps, preset.StepRequest{
			Method:       string(g.randomMethod()),
			IntervalDays: offset,
			AssigneeRule: string(domain.AssignEntityOwner),
		})
		offset = 3 + g.rng.Intn(11)
	}

	return preset.CreatePresetRequest{
		Name:                 name,
		Description:          g.faker.Sentence(8),
		Steps:                steps,
		DefaultCycleBehavior: behaviors[i%len(behaviors)],
	}
}

func (g *Generator) activateRequest(presetID int) subscription.ActivateRequest {
	return subscription.ActivateRequest{
		EntityType:  entityTypes[g.rng.Intn(len(entityTypes))],
		EntityID:    1 + g.rng.Intn(5000),
		EntityName:  g.faker.Company(),
		EntityPhone: fmt.Sprintf("212555%04d", g.rng.Intn(10000)),
		PresetID:    &presetID,
		AssignedTo:  1 + g.rng.Intn(5),
	}
}

// workTouches resolves a random prefix of the first cycle so progress views
// and the activity log have something to show.
func (g *Generator) workTouches(ctx context.Context, subscriptionID int, chance float64) error {
	list, err := g.touches.ListBySubscription(ctx, subscriptionID, nil)
	if err != nil {
		return err
	}

	for _, t := range list {
		if g.rng.Float64() >= chance {
			break
		}
		if g.rng.Float64() < 0.2 {
			_, err = g.touches.SkipTouch(ctx, 0, t.ID)
		} else {
			_, err = g.touches.CompleteTouch(ctx, 0, t.ID, touch.CompleteTouchRequest{
				Outcome: outcomes[g.rng.Intn(len(outcomes))],
				Notes:   g.faker.Sentence(6),
			})
		}
		if err != nil {
			return fmt.Errorf("failed to resolve touch %d: %w", t.ID, err)
		}
	}

	return nil
}

func (g *Generator) randomMethod() domain.TouchMethod {
	methods := []domain.TouchMethod{
		domain.MethodCall,
		domain.MethodWhatsapp,
		domain.MethodEmail,
		domain.MethodVisit,
	}
	return methods[g.rng.Intn(len(methods))]
}
