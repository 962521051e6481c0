// Package domain models per-island earthquake risk statistics for Indonesia.
//
// # Data Source
//
// Statistics are produced upstream by a modelling pipeline that estimates the
// probability of a significant earthquake per island and predicts average
// magnitudes. The pipeline writes one row per island to
// outputs/probabilitas_dan_prediksi_magnitudo_per_pulau.csv. This service
// treats that table as immutable input and never recomputes any value.
//
// # Column Conventions
//
//	island                    aggregation unit, e.g. "Jawa", "Nusa Tenggara"
//	probability_model (%)     model-predicted probability, percentage scale
//	probability_historis (%)  historical probability, percentage scale
//	avg_predicted_mag         average predicted magnitude
//	avg_mag                   average historical magnitude
//	freq                      count of historical events
//
// Island names are matched against the centroid table exactly: case,
// spacing and spelling all matter. "Nusa Tenggara" maps, "nusa tenggara"
// does not.
//
// # Risk Buckets
//
// Marker colouring uses four buckets of probability_model, lower bound
// inclusive:
//
//	p >= 25       very high  (darkred)
//	15 <= p < 25  high       (orange)
//	5 <= p < 15   medium     (green)
//	p < 5         low        (blue)
//
// Values outside [0, 100] go through the same comparisons. See [Classify].
//
// # Centroids
//
// The eight island centroids are fixed reference points chosen for marker
// placement, not derived from seismic data. Rows whose island is not one of
// the eight keys are kept in the table and charts but never mapped. See
// [LookupCentroid].
package domain
