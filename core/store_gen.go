package core

import "fmt"

func BankLikeGenerator(seed int64, versions int64) ChangesetGenerator {
	return ChangesetGenerator{
		StoreKey:         "bank",
		Seed:             seed,
		KeyMean:          56,
		KeyStdDev:        3,
		ValueMean:        100,
		ValueStdDev:      1200,
		InitialSize:      35_000,
		FinalSize:        2_200_200,
		Versions:         versions,
		ChangePerVersion: int(int64(368_000_000) / versions),
		DeleteFraction:   0.25,
	}
}

func LockupLikeGenerator(seed int64, versions int64) ChangesetGenerator {
	return ChangesetGenerator{
		StoreKey:         "lockup",
		Seed:             seed,
		KeyMean:          56,
		KeyStdDev:        3,
		ValueMean:        1936,
		ValueStdDev:      29261,
		InitialSize:      35_000,
		FinalSize:        2_600_200,
		Versions:         versions,
		ChangePerVersion: int(int64(72_560_000) / versions),
		DeleteFraction:   0.29,
	}
}

func StakingLikeGenerator(seed int64, versions int64) ChangesetGenerator {
	return ChangesetGenerator{
		StoreKey:         "staking",
		Seed:             seed,
		KeyMean:          24,
		KeyStdDev:        2,
		ValueMean:        1000,
		ValueStdDev:      500,
		InitialSize:      1_000,
		FinalSize:        300_000,
		Versions:         versions,
		ChangePerVersion: int(int64(30_000_000) / versions),
		DeleteFraction:   0.05,
	}
}

// SmallGenerators is a quick three store workload for smoke runs and tests.
func SmallGenerators(seed int64, versions int64) []ChangesetGenerator {
	small := func(storeKey string, seed int64) ChangesetGenerator {
		return ChangesetGenerator{
			StoreKey:         storeKey,
			Seed:             seed,
			KeyMean:          16,
			KeyStdDev:        4,
			ValueMean:        32,
			ValueStdDev:      16,
			InitialSize:      1_000,
			FinalSize:        1_000 + 100*int(versions-1),
			Versions:         versions,
			ChangePerVersion: 200,
			DeleteFraction:   0.2,
		}
	}
	return []ChangesetGenerator{
		small("bank", seed),
		small("staking", seed+1),
		small("lockup", seed+2),
	}
}

// Generators returns the workload registered under profile.
func Generators(profile string, seed int64, versions int64) ([]ChangesetGenerator, error) {
	if versions < 1 {
		return nil, fmt.Errorf("versions must be at least 1; got %d", versions)
	}
	switch profile {
	case "small":
		return SmallGenerators(seed, versions), nil
	case "bank":
		return []ChangesetGenerator{BankLikeGenerator(seed, versions)}, nil
	case "lockup":
		return []ChangesetGenerator{LockupLikeGenerator(seed, versions)}, nil
	case "osmo":
		return []ChangesetGenerator{
			BankLikeGenerator(seed, versions),
			StakingLikeGenerator(seed+1, versions),
			LockupLikeGenerator(seed+2, versions),
		}, nil
	default:
		return nil, fmt.Errorf("unknown generator profile: %s", profile)
	}
}

// StoreKeys lists the distinct store keys of gens in order.
func StoreKeys(gens []ChangesetGenerator) []string {
	var keys []string
	seen := map[string]bool{}
	for _, gen := range gens {
		if !seen[gen.StoreKey] {
			seen[gen.StoreKey] = true
			keys = append(keys, gen.StoreKey)
		}
	}
	return keys
}
