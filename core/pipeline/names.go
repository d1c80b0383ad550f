package pipeline

import "guildhall/core/rng"

// heroGivenNames and heroSurnames are sampled independently to build a new
// arrival's display name. The lists are small and closed; variety comes
// from the cross product plus the traits roll, not from the name itself.
var heroGivenNames = []string{
	"Aldric", "Branwen", "Corin", "Dessa", "Eamon", "Fiora", "Garrick", "Hilde",
	"Ivon", "Jessamy", "Kester", "Liora", "Maren", "Nyle", "Odessa", "Perrin",
}

var heroSurnames = []string{
	"Ashford", "Blackwood", "Crowley", "Dunmore", "Emberlyn", "Fenwick",
	"Greycastle", "Harrow", "Ironside", "Larkspur", "Marrow", "Nightshade",
	"Oakhart", "Pyreweld", "Quillon", "Ravenscar",
}

// SampleHeroName draws a given-name/surname pair.
func SampleHeroName(r *rng.Source) (string, error) {
	gi, err := r.NextInt(int32(len(heroGivenNames)))
	if err != nil {
		return "", err
	}
	si, err := r.NextInt(int32(len(heroSurnames)))
	if err != nil {
		return "", err
	}
	return heroGivenNames[gi] + " " + heroSurnames[si], nil
}

// contractTitleNouns and contractTitleVerbs build a draft's flavor title.
var contractTitleNouns = []string{
	"Goblin Warren", "Haunted Mill", "Sunken Cistern", "Bandit Camp",
	"Cursed Grove", "Old Watchtower", "Sealed Crypt", "Wyrm's Den",
}

var contractTitleVerbs = []string{
	"Clear the", "Investigate the", "Purge the", "Reclaim the",
}

// SampleContractTitle draws a verb/noun title for a new draft.
func SampleContractTitle(r *rng.Source) (string, error) {
	vi, err := r.NextInt(int32(len(contractTitleVerbs)))
	if err != nil {
		return "", err
	}
	ni, err := r.NextInt(int32(len(contractTitleNouns)))
	if err != nil {
		return "", err
	}
	return contractTitleVerbs[vi] + " " + contractTitleNouns[ni], nil
}
