package advisor

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

// WantedByEntry explains one wanting character's demand for a candidate in
// the output.
type WantedByEntry struct {
	CharacterID string
	Name        string
	Category    kb.RoleCategory
	Rating      SynergyRating
	Reason      string
}

// Recommendation is one ranked entry in a pull-advice view.
type Recommendation struct {
	Character       *kb.Character
	Rating          GranularRating
	Score           float64
	WantedBy        []WantedByEntry
	InvestmentNotes []string
	Verdict         PullVerdict
}

// PullAdvice is the full result of a general pull recommendation run: two
// disjoint ranked views, partitioned by the candidate's role bucket.
type PullAdvice struct {
	Mode            kb.GameMode
	TeammatesForDPS []Recommendation // support candidates wanted by owned DPS
	DPSForSupports  []Recommendation // DPS candidates wanted by owned supports
}

// BannerRecommendation is one featured character's evaluation on a banner.
type BannerRecommendation struct {
	Character *kb.Character
	New       bool
	Rating    GranularRating
	Score     float64
	Reasons   []string
	Verdict   PullVerdict
}

// BannerAnalysis groups a banner's featured characters into the two
// disjoint buckets and ranks each.
type BannerAnalysis struct {
	Banner   *kb.Banner
	DPS      []BannerRecommendation
	Supports []BannerRecommendation
}

// Advisor runs the scoring pipeline against one knowledge-base index.
// It is safe for concurrent readers: the index is immutable and every
// computation works on a caller-supplied snapshot.
type Advisor struct {
	idx   *kb.Index
	log   zerolog.Logger
	cache *resultCache
}

// New creates an advisor over the given knowledge-base index.
func New(idx *kb.Index, log zerolog.Logger) *Advisor {
	return &Advisor{
		idx:   idx,
		log:   log,
		cache: newResultCache(),
	}
}

// PullRecommendations produces the two ranked recommendation views for the
// current roster snapshot and game mode. Results are memoized by
// {snapshot hash, mode, knowledge-base version}; memoization is purely a
// performance optimization, identical inputs always produce identical
// output with or without it.
func (a *Advisor) PullRecommendations(snap roster.Snapshot, mode kb.GameMode) *PullAdvice {
	key := cacheKey{roster: snap.Hash(), mode: mode, kbVersion: a.idx.Version}
	if cached := a.cache.get(key); cached != nil {
		return cached
	}

	advice := &PullAdvice{Mode: mode}

	for _, id := range a.idx.Characters() {
		candidate := a.idx.Character(id)
		if snap.Owned(id) {
			continue
		}

		rec, ok := a.evaluateCandidate(candidate, snap, mode)
		if !ok {
			continue
		}

		if candidate.IsDPS() {
			advice.DPSForSupports = append(advice.DPSForSupports, rec)
		} else {
			advice.TeammatesForDPS = append(advice.TeammatesForDPS, rec)
		}
	}

	sortRecommendations(advice.TeammatesForDPS)
	sortRecommendations(advice.DPSForSupports)

	a.cache.put(key, advice)
	return advice
}

// evaluateCandidate aggregates demand for one unowned candidate. The view
// split is by wanting bucket: support candidates count demand from owned
// DPS, DPS candidates count demand from owned supports. Candidates nobody
// wants are omitted from the ranked views (the defined D/0 floor carries no
// information for ranking).
func (a *Advisor) evaluateCandidate(candidate *kb.Character, snap roster.Snapshot, mode kb.GameMode) (Recommendation, bool) {
	wantDPS := !candidate.IsDPS()

	var contribs []Contribution
	var wantedBy []WantedByEntry
	var notes []string

	for _, edge := range a.idx.WantedBy(candidate.ID) {
		wanting := a.idx.Character(edge.WantingID)
		if wanting == nil {
			a.log.Warn().
				Str("wanting", edge.WantingID).
				Str("wanted", edge.WantedID).
				Msg("dropping edge with unknown wanting character")
			continue
		}
		if !snap.Owned(edge.WantingID) || wanting.IsDPS() != wantDPS {
			continue
		}

		rating := EffectiveRating(edge, snap)
		contribs = append(contribs, Contribution{
			WantingID:   edge.WantingID,
			WantingTier: BestTier(a.idx, edge.WantingID, mode),
			Rating:      rating,
			Multiplier:  CoveragePenalty(a.idx, edge.WantingID, edge.Category, snap, candidate.ID),
		})
		wantedBy = append(wantedBy, WantedByEntry{
			CharacterID: edge.WantingID,
			Name:        wanting.Name,
			Category:    edge.Category,
			Rating:      rating,
			Reason:      edge.Reason,
		})
		notes = append(notes, investmentNotes(edge, wanting.Name)...)
	}

	if len(contribs) == 0 {
		return Recommendation{}, false
	}

	candidateTier := BestTier(a.idx, candidate.ID, mode)
	rating, score := Aggregate(contribs, candidateTier)

	teams := AnalyzeTeams(a.idx, candidate.ID, snap, mode)
	var dpsAnalysis *DPSTeamAnalysis
	if candidate.IsDPS() {
		d := AnalyzeDPSSupport(a.idx, candidate.ID, snap)
		dpsAnalysis = &d
	}
	verdict := ComputeVerdict(teams, dpsAnalysis, candidateTier, rating, score, snap.Owned(candidate.ID))

	return Recommendation{
		Character:       candidate,
		Rating:          rating,
		Score:           score,
		WantedBy:        wantedBy,
		InvestmentNotes: notes,
		Verdict:         verdict,
	}, true
}

// BannerAdvice evaluates a banner's featured characters using the
// eidolon-requirement scoring variant and buckets them into DPS and
// supports. Featured ids the knowledge base does not know are dropped and
// logged, never fatal.
func (a *Advisor) BannerAdvice(bannerID string, snap roster.Snapshot, mode kb.GameMode) (*BannerAnalysis, error) {
	banner := a.idx.Banner(bannerID)
	if banner == nil {
		return nil, fmt.Errorf("unknown banner %q", bannerID)
	}

	analysis := &BannerAnalysis{Banner: banner}

	for _, featured := range banner.Featured {
		candidate := a.idx.Character(featured.CharacterID)
		if candidate == nil {
			a.log.Warn().
				Str("banner", bannerID).
				Str("character", featured.CharacterID).
				Msg("dropping featured character unknown to the knowledge base")
			continue
		}

		rec := a.evaluateBannerCandidate(candidate, featured.New, snap, mode)
		if candidate.IsDPS() {
			analysis.DPS = append(analysis.DPS, rec)
		} else {
			analysis.Supports = append(analysis.Supports, rec)
		}
	}

	sortBannerRecommendations(analysis.DPS)
	sortBannerRecommendations(analysis.Supports)

	return analysis, nil
}

// evaluateBannerCandidate scores one featured character. Unlike the
// general pull path, demand from every owned wanting character counts, and
// the per-contribution multiplier is the eidolon-requirement variant.
func (a *Advisor) evaluateBannerCandidate(candidate *kb.Character, isNew bool, snap roster.Snapshot, mode kb.GameMode) BannerRecommendation {
	owned := snap.Owned(candidate.ID)

	var contribs []Contribution
	var reasons []string

	for _, edge := range a.idx.WantedBy(candidate.ID) {
		wanting := a.idx.Character(edge.WantingID)
		if wanting == nil {
			a.log.Warn().
				Str("wanting", edge.WantingID).
				Str("wanted", edge.WantedID).
				Msg("dropping edge with unknown wanting character")
			continue
		}
		if !snap.Owned(edge.WantingID) {
			continue
		}

		rating := EffectiveRating(edge, snap)
		contribs = append(contribs, Contribution{
			WantingID:   edge.WantingID,
			WantingTier: BestTier(a.idx, edge.WantingID, mode),
			Rating:      rating,
			Multiplier:  EidolonRequirementMultiplier(edge, snap, candidate.ID),
		})
		if rating.AtLeast(RatingA) && edge.Reason != "" {
			reasons = append(reasons, fmt.Sprintf("%s: %s", wanting.Name, edge.Reason))
		}
	}

	candidateTier := BestTier(a.idx, candidate.ID, mode)
	rating, score := Aggregate(contribs, candidateTier)

	teams := AnalyzeTeams(a.idx, candidate.ID, snap, mode)
	var dpsAnalysis *DPSTeamAnalysis
	if candidate.IsDPS() {
		d := AnalyzeDPSSupport(a.idx, candidate.ID, snap)
		dpsAnalysis = &d
	}
	verdict := ComputeVerdict(teams, dpsAnalysis, candidateTier, rating, score, owned)

	return BannerRecommendation{
		Character: candidate,
		New:       isNew,
		Rating:    rating,
		Score:     score,
		Reasons:   reasons,
		Verdict:   verdict,
	}
}

// ActiveBanners returns analyses for every banner active at the given
// time, in banner-id order.
func (a *Advisor) ActiveBanners(snap roster.Snapshot, mode kb.GameMode, now time.Time) []*BannerAnalysis {
	var analyses []*BannerAnalysis
	for _, banner := range a.idx.ActiveBanners(now) {
		analysis, err := a.BannerAdvice(banner.ID, snap, mode)
		if err != nil {
			continue
		}
		analyses = append(analyses, analysis)
	}
	return analyses
}

// investmentNotes renders an edge's modifier notes for the output.
func investmentNotes(edge *kb.TeammateRecommendation, wantingName string) []string {
	var notes []string
	for _, m := range edge.Modifiers {
		if m.Note == "" {
			continue
		}
		notes = append(notes, fmt.Sprintf("%s (E%d): %s", wantingName, m.Level, m.Note))
	}
	return notes
}

// sortRecommendations orders by score descending with character id as the
// deterministic tiebreak.
func sortRecommendations(recs []Recommendation) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Character.ID < recs[j].Character.ID
	})
}

func sortBannerRecommendations(recs []BannerRecommendation) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Character.ID < recs[j].Character.ID
	})
}
