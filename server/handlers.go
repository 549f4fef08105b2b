package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/milden6/anadawg/anagram"
)

// AnagramsResponse is the body of GET /v1/anagrams.
type AnagramsResponse struct {
	Letters string   `json:"letters"`
	Count   int      `json:"count"`
	Words   []string `json:"words"`
}

// BatchRequest is the body of POST /v1/anagrams/batch.
type BatchRequest struct {
	Racks []string `json:"racks" binding:"required"`
}

// BatchResponse holds one entry per requested rack, in request order.
type BatchResponse struct {
	Results []AnagramsResponse `json:"results"`
}

// DictionaryResponse describes the loaded dictionary.
type DictionaryResponse struct {
	Nodes       int    `json:"nodes"`
	Edges       int    `json:"edges"`
	RootMask    uint32 `json:"rootMask"`
	RootLetters string `json:"rootLetters"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) anagrams(c *gin.Context) {
	letters := c.Query("letters")

	rack, ok := anagram.ParseRack(letters)
	if !ok {
		s.metrics.searches.WithLabelValues(outcomeInvalid).Inc()
		c.JSON(http.StatusOK, AnagramsResponse{Letters: letters, Words: []string{}})
		return
	}

	start := time.Now()
	words, err := s.engine.SearchRackContext(c.Request.Context(), rack)
	if err != nil {
		s.metrics.searches.WithLabelValues(outcomeCanceled).Inc()
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	s.metrics.duration.Observe(time.Since(start).Seconds())
	s.found(len(words))

	c.JSON(http.StatusOK, AnagramsResponse{Letters: letters, Count: len(words), Words: words})
}

func (s *Server) batch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if len(req.Racks) > s.maxBatch {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: "too many racks in one batch",
		})
		return
	}

	results, err := s.engine.SearchAll(c.Request.Context(), req.Racks)
	if err != nil {
		s.metrics.searches.WithLabelValues(outcomeCanceled).Add(float64(len(req.Racks)))
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	resp := BatchResponse{Results: make([]AnagramsResponse, len(results))}
	for i, words := range results {
		if _, ok := anagram.ParseRack(req.Racks[i]); ok {
			s.found(len(words))
		} else {
			s.metrics.searches.WithLabelValues(outcomeInvalid).Inc()
		}
		resp.Results[i] = AnagramsResponse{Letters: req.Racks[i], Count: len(words), Words: words}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) dictionary(c *gin.Context) {
	store := s.engine.Store()
	c.JSON(http.StatusOK, DictionaryResponse{
		Nodes:       store.NumNodes(),
		Edges:       store.NumEdges(),
		RootMask:    uint32(store.RootMask()),
		RootLetters: store.RootMask().String(),
	})
}

func (s *Server) found(n int) {
	s.metrics.searches.WithLabelValues(outcomeOK).Inc()
	s.metrics.results.Observe(float64(n))
}
