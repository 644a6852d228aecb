package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters, registered on the default registry and exposed on /metrics.
var (
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ridewise_posts_created_total",
		Help: "Number of discussion posts created.",
	})

	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ridewise_posts_deleted_total",
		Help: "Number of discussion posts deleted by their authors.",
	})

	RepliesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ridewise_replies_created_total",
		Help: "Number of replies created.",
	})

	ReactionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ridewise_reaction_transitions_total",
		Help: "Reaction toggle transitions by outcome.",
	}, []string{"outcome"}) // added, removed, switched

	ImageUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ridewise_image_uploads_total",
		Help: "Post image uploads by result.",
	}, []string{"result"}) // ok, error
)
