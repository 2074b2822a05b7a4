package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:8081" // e2e окружение
	rps        = 5
	duration   = 3 * time.Minute
)

type CreateUserRequest struct {
	Username     string `json:"username"`
	MobileNumber string `json:"mobileNumber"`
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type AddUserRequest struct {
	UserID string `json:"userId"`
}

type CreateReportRequest struct {
	Yesterday []string `json:"yesterday"`
	Today     []string `json:"today"`
	Problems  string   `json:"problems,omitempty"`
	Date      int64    `json:"date"`
}

type createdEntity struct {
	ID string `json:"_id"`
}

// Темы для генерации отчетов с пересекающимися ключевыми словами
var topics = []string{
	"deploy billing service",
	"fix login flow",
	"rebuild deploy pipeline",
	"migrate reports storage",
	"profile search latency",
	"review billing migration",
}

var (
	teamIDs []string
	userIDs []string
	// участники по командам, чтобы отчеты создавались от имени своих
	teamMembers = map[string][]string{}
	httpc       = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url, userID string, body any) (int, string, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var entity createdEntity
	_ = json.Unmarshal(raw, &entity)
	return resp.StatusCode, entity.ID, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: creating users and teams...")

	for t := 1; t <= 20; t++ {
		var members []string
		for u := 1; u <= 10; u++ {
			username := fmt.Sprintf("load_user_%d_%d_%d", t, u, time.Now().UnixNano())
			status, userID, err := postJSON(targetHost+"/users", "", CreateUserRequest{Username: username})
			if err != nil {
				return err
			}
			if status >= 400 || userID == "" {
				log.Printf("WARN POST /users returned %d\n", status)
				continue
			}
			members = append(members, userID)
			userIDs = append(userIDs, userID)
			time.Sleep(10 * time.Millisecond)
		}
		if len(members) == 0 {
			continue
		}

		status, teamID, err := postJSON(targetHost+"/teams", members[0], CreateTeamRequest{
			Name: fmt.Sprintf("load-team-%02d", t),
		})
		if err != nil {
			return err
		}
		if status >= 400 || teamID == "" {
			log.Printf("WARN POST /teams returned %d\n", status)
			continue
		}

		for _, userID := range members[1:] {
			status, _, err := postJSON(targetHost+"/teams/"+teamID+"/addUser", "", AddUserRequest{UserID: userID})
			if err != nil {
				return err
			}
			if status >= 400 {
				log.Printf("WARN POST /teams/:id/addUser returned %d\n", status)
			}
			time.Sleep(10 * time.Millisecond)
		}

		teamIDs = append(teamIDs, teamID)
		teamMembers[teamID] = members
		time.Sleep(20 * time.Millisecond)
	}

	log.Println("Seeding: creating report history...")

	// Исторические отчеты за прошлые дни, чтобы подбор помощников имел
	// с чем пересекаться
	reports := 0
	for _, teamID := range teamIDs {
		for i, userID := range teamMembers[teamID] {
			date := time.Now().AddDate(0, 0, -(i + 1))
			status, _, err := postJSON(targetHost+"/teams/"+teamID+"/reports", userID, CreateReportRequest{
				Yesterday: []string{"load seeding"},
				Today:     []string{topics[rand.Intn(len(topics))]},
				Date:      date.UnixMilli(),
			})
			if err != nil {
				return err
			}
			if status >= 400 {
				log.Printf("WARN POST /teams/:id/reports returned %d\n", status)
				continue
			}
			reports++
			time.Sleep(15 * time.Millisecond)
		}
	}

	log.Printf("Seed completed: teams=%d users=%d reports=%d\n", len(teamIDs), len(userIDs), reports)
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 60% GET /teams/:id/reports
		if r < 0.60 {
			teamID := teamIDs[rand.Intn(len(teamIDs))]
			members := teamMembers[teamID]
			userID := members[rand.Intn(len(members))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/teams/%s/reports?limit=50", targetHost, teamID)
			t.Body = nil
			t.Header = map[string][]string{
				"Accept":    {"application/json"},
				"X-User-Id": {userID},
			}
			return nil
		}

		// 25% GET /users/:id/reports
		if r < 0.85 {
			userID := userIDs[rand.Intn(len(userIDs))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/%s/reports", targetHost, userID)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 10% GET /teams/:id/stats
		if r < 0.95 {
			teamID := teamIDs[rand.Intn(len(teamIDs))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/teams/%s/stats", targetHost, teamID)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 5% POST /teams/:id/reports — уникальный день на каждый запрос,
		// чтобы не упираться в конфликт "отчет уже есть"
		teamID := teamIDs[rand.Intn(len(teamIDs))]
		members := teamMembers[teamID]
		userID := members[rand.Intn(len(members))]
		date := time.Now().AddDate(0, 0, -(20 + rand.Intn(3000)))
		body, _ := json.Marshal(CreateReportRequest{
			Yesterday: []string{"load testing"},
			Today:     []string{topics[rand.Intn(len(topics))]},
			Problems:  "generated under load",
			Date:      date.UnixMilli(),
		})
		t.Method = http.MethodPost
		t.URL = targetHost + "/teams/" + teamID + "/reports"
		t.Body = body
		t.Header = map[string][]string{
			"Content-Type": {"application/json"},
			"X-User-Id":    {userID},
		}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
