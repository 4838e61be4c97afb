package benchmark

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/event-registry-api/internal/lifecycle"
	"github.com/event-registry-api/internal/mocks"
	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/repository"
)

// BenchmarkResolveColor benchmarks the combined-status resolution path
func BenchmarkResolveColor(b *testing.B) {
	pairs := [][2]string{
		{"AGENDADO", "RASCUNHO"},
		{"ATIVO", "PUBLICADO"},
		{"ENCERRADO", "CANCELADO"},
		{"ativo", "suspenso"},
		{"EM_ANDAMENTO", "ARQUIVADO"},
		{"", ""},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		p := pairs[i%len(pairs)]
		lifecycle.ResolveColor(p[0], p[1])
	}
}

// BenchmarkResolveTimeStatus benchmarks temporal-status derivation
func BenchmarkResolveTimeStatus(b *testing.B) {
	now := time.Now()
	start := now.Add(-24 * time.Hour)
	end := now.Add(24 * time.Hour)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		lifecycle.ResolveTimeStatus(&start, &end, now)
	}
}

// BenchmarkTeamMemberUpsert benchmarks the snapshot rewrite cost of a
// grant upsert as the collection grows
func BenchmarkTeamMemberUpsert(b *testing.B) {
	cs := mocks.NewCollectionStore()
	repos := repository.New(cs)
	ctx := context.Background()

	// Pre-populate 1000 grants
	for i := 0; i < 1000; i++ {
		member := &models.TeamMember{
			UserID:    fmt.Sprintf("user-%04d", i),
			EventID:   fmt.Sprintf("event-%02d", i%20),
			Role:      models.EventRoleObserver,
			GrantedAt: time.Now(),
		}
		if err := repos.TeamMember.Upsert(ctx, member); err != nil {
			b.Fatalf("Upsert failed: %v", err)
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		member := &models.TeamMember{
			UserID:    fmt.Sprintf("user-%04d", i%1000),
			EventID:   fmt.Sprintf("event-%02d", i%20),
			Role:      models.EventRoleAssistant,
			GrantedAt: time.Now(),
		}
		if err := repos.TeamMember.Upsert(ctx, member); err != nil {
			b.Fatalf("Upsert failed: %v", err)
		}
	}
}
