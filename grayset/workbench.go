package grayset

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/tuannh982/grayset/grayset/commons"
	"github.com/tuannh982/grayset/utils/collections"

	log "github.com/sirupsen/logrus"
)

type GraySet = collections.HashSet[commons.Gray]

type PairSet = collections.HashSet[collections.Pair[commons.Gray, commons.Gray]]

// Workbench draws a universe and two subsets of it, then evaluates every
// set operator over them.
type Workbench struct {
	config Config
	rnd    *rand.Rand
	// log
	log *log.Entry
}

type Report struct {
	Universe GraySet
	S1       GraySet
	S2       GraySet
	// named results in evaluation order
	Results []Result
	Sum     PairSet
	Product PairSet
}

type Result struct {
	Label string
	Set   GraySet
}

func NewWorkbench(config Config, rnd *rand.Rand) (*Workbench, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	logger := log.WithFields(log.Fields{"power": config.Power, "multiset": config.Multiset})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.InfoLevel)
	if config.Verbose {
		logger.Logger.SetLevel(log.DebugLevel)
	}
	return &Workbench{
		config: config,
		rnd:    rnd,
		log:    logger,
	}, nil
}

func (w *Workbench) subset() (GraySet, error) {
	if w.config.Multiset {
		return RandomBag(w.config.Power, w.config.Buckets, w.rnd)
	}
	return Random(w.config.Power, w.config.Buckets, w.rnd)
}

func (w *Workbench) Evaluate() (*Report, error) {
	universe, err := Universe(w.config.Power, w.config.Buckets)
	if err != nil {
		return nil, err
	}
	w.log.Debug("universe generated, count=", universe.Count())
	s1, err := w.subset()
	if err != nil {
		return nil, err
	}
	s2, err := w.subset()
	if err != nil {
		return nil, err
	}
	w.log.Debug("subsets generated, s1=", s1.Count(), " s2=", s2.Count())
	report := &Report{
		Universe: universe,
		S1:       s1,
		S2:       s2,
		Results: []Result{
			{"S1 & S2", s1.Intersection(s2)},
			{"S1 | S2", s1.Union(s2)},
			{"S1 - S2", s1.Difference(s2)},
			{"S2 - S1", s2.Difference(s1)},
			{"S1 ^ S2", s1.SymmetricDifference(s2)},
			{"SU \\ S1", s1.Complement(universe)},
			{"SU \\ S2", s2.Complement(universe)},
		},
	}
	for _, r := range report.Results {
		w.log.Debug("evaluated ", r.Label, " count=", r.Set.Count())
	}
	// sum and product need non-empty operands to size their result
	if report.Sum, err = collections.Sum(s1, s2, commons.GrayPairHash); err != nil {
		w.log.Warn("skip S1 + S2: ", err)
	}
	if report.Product, err = collections.Product(s1, s2, commons.GrayPairHash); err != nil {
		w.log.Warn("skip S1 x S2: ", err)
	}
	w.log.Info("evaluation done")
	return report, nil
}

func (w *Workbench) Run(out io.Writer) error {
	report, err := w.Evaluate()
	if err != nil {
		return errors.Wrap(err, "evaluate")
	}
	return report.Write(out, w.config.PerLine)
}

func (r *Report) Write(out io.Writer, perLine int) error {
	if err := ShowTable(out, r.Universe); err != nil {
		return err
	}
	separator := func() {
		fmt.Fprintln(out, "--------------------------")
	}
	Show(out, "SU", r.Universe, perLine)
	separator()
	Show(out, "S1", r.S1, perLine)
	separator()
	Show(out, "S2", r.S2, perLine)
	separator()
	for _, result := range r.Results {
		Show(out, result.Label, result.Set, perLine)
	}
	if r.Sum != nil {
		Show(out, "S1 + S2", r.Sum, perLine)
	}
	if r.Product != nil {
		Show(out, "S1 x S2", r.Product, perLine)
	}
	if r.S1.IsMultiset() {
		separator()
		ShowAnalysis(out, "S1 analysis", r.S1)
		ShowAnalysis(out, "S2 analysis", r.S2)
	}
	return nil
}
