package gate

import (
	"testing"

	"SecNewsScanner/internal/domain"
)

func TestDecideBlacklistWinsOverTechnical(t *testing.T) {
	t.Parallel()

	// Contains both a blacklist phrase and a CVE: noise suppression must
	// dominate even a real vulnerability mention.
	article := domain.Article{
		Title:       "Top 10 tips to secure your CVE-2024-0001 system",
		Description: "A listicle of advice.",
	}

	decision := Decide(article)
	if decision.Process {
		t.Fatalf("blacklisted article must not be processed: %+v", decision)
	}
	if decision.Category != domain.GateBlocked {
		t.Fatalf("expected blocked, got %s", decision.Category)
	}
	if decision.MatchedKeyword != "top 10" {
		t.Fatalf("expected matched keyword top 10, got %q", decision.MatchedKeyword)
	}
}

func TestDecideTechnicalByCVEPattern(t *testing.T) {
	t.Parallel()

	decision := Decide(domain.Article{
		Title:       "New flaw tracked as CVE-2024-12345 under exploitation",
		Description: "Details pending.",
	})
	if !decision.Process || decision.Category != domain.GateTechnical {
		t.Fatalf("expected technical pass, got %+v", decision)
	}
	if decision.MatchedKeyword != "cve-2024-12345" {
		t.Fatalf("expected cve keyword, got %q", decision.MatchedKeyword)
	}
}

func TestDecideTechnicalByHighCVSSMention(t *testing.T) {
	t.Parallel()

	decision := Decide(domain.Article{
		Title:       "Vendor flaw rated CVSS: 9.8",
		Description: "No identifier assigned yet.",
	})
	if !decision.Process || decision.Category != domain.GateTechnical {
		t.Fatalf("expected technical pass for CVSS>=9 mention, got %+v", decision)
	}
}

func TestDecideTechnicalByKeyword(t *testing.T) {
	t.Parallel()

	decision := Decide(domain.Article{
		Title:       "Zero-day in enterprise VPN appliances",
		Description: "Exploitation observed.",
	})
	if !decision.Process || decision.Category != domain.GateTechnical {
		t.Fatalf("expected technical pass, got %+v", decision)
	}
}

func TestDecideBusinessWhitelist(t *testing.T) {
	t.Parallel()

	decision := Decide(domain.Article{
		Title:       "Manufacturer reports operations halted after cyberattack",
		Description: "Factories offline since Monday.",
	})
	if !decision.Process || decision.Category != domain.GateBusiness {
		t.Fatalf("expected business pass, got %+v", decision)
	}
	if decision.MatchedKeyword != "operations halted" {
		t.Fatalf("unexpected keyword %q", decision.MatchedKeyword)
	}
}

func TestDecideTechnicalBeatsBusiness(t *testing.T) {
	t.Parallel()

	decision := Decide(domain.Article{
		Title:       "Zero-day forces plant shutdown, operations halted",
		Description: "",
	})
	if decision.Category != domain.GateTechnical {
		t.Fatalf("technical tier precedes business tier, got %s", decision.Category)
	}
}

func TestDecideDefaultDeny(t *testing.T) {
	t.Parallel()

	decision := Decide(domain.Article{
		Title:       "Industry event announces keynote speakers",
		Description: "Schedule released.",
	})
	if decision.Process {
		t.Fatalf("no-match article must be rejected")
	}
	if decision.Category != domain.GateNoMatch {
		t.Fatalf("expected no_match, got %s", decision.Category)
	}
	if decision.MatchedKeyword != "" {
		t.Fatalf("no keyword expected, got %q", decision.MatchedKeyword)
	}
}
