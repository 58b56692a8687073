package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cucumber/godog"

	"shenfen/internal/identity/models"
)

// RegisterSteps registers all step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Background steps
	ctx.Step(`^the generator service is running$`, tc.generatorServiceIsRunning)

	// Generation steps
	ctx.Step(`^I request (\d+) identities$`, tc.requestIdentities)
	ctx.Step(`^I request (\d+) identities with seed (\d+)$`, tc.requestIdentitiesWithSeed)
	ctx.Step(`^I request (\d+) identities with gender "([^"]*)"$`, tc.requestIdentitiesWithGender)
	ctx.Step(`^I request (\d+) identities from region "([^"]*)"$`, tc.requestIdentitiesFromRegion)
	ctx.Step(`^I request (\d+) identities with keys "([^"]*)"$`, tc.requestIdentitiesWithKeys)
	ctx.Step(`^I repeat the same request$`, tc.repeatSameRequest)
	ctx.Step(`^I save the returned identities$`, tc.saveReturnedIdentities)
	ctx.Step(`^I request the field catalog$`, tc.requestFieldCatalog)

	// Card steps
	ctx.Step(`^I request a rendered card with seed (\d+)$`, tc.requestCardWithSeed)
	ctx.Step(`^I request a rendered card from region "([^"]*)"$`, tc.requestCardFromRegion)

	// Probe steps
	ctx.Step(`^I probe "([^"]*)"$`, tc.probe)

	// Assertion steps
	ctx.Step(`^the response status should be (\d+)$`, tc.responseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.responseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, tc.responseFieldShouldEqual)
	ctx.Step(`^I should receive (\d+) identities$`, tc.shouldReceiveIdentities)
	ctx.Step(`^every national id should be unique$`, tc.nationalIDsShouldBeUnique)
	ctx.Step(`^every identity should have gender "([^"]*)"$`, tc.identitiesShouldHaveGender)
	ctx.Step(`^every national id should start with "([^"]*)"$`, tc.nationalIDsShouldStartWith)
	ctx.Step(`^each identity should expose exactly the keys "([^"]*)"$`, tc.identitiesShouldExposeKeys)
	ctx.Step(`^the identities should match the saved ones$`, tc.identitiesShouldMatchSaved)
	ctx.Step(`^the catalog should list every identity field$`, tc.catalogShouldListEveryField)
	ctx.Step(`^the response should be a PNG image$`, tc.responseShouldBePNG)
	ctx.Step(`^the avatar backend header should be present$`, tc.avatarBackendHeaderPresent)
}

func (tc *TestContext) generatorServiceIsRunning(ctx context.Context) error {
	return nil
}

func (tc *TestContext) requestIdentities(ctx context.Context, count int) error {
	tc.LastRequestBody = map[string]any{"count": count}
	return tc.POST("/api/v1/identities", tc.LastRequestBody)
}

func (tc *TestContext) requestIdentitiesWithSeed(ctx context.Context, count, seed int) error {
	tc.LastRequestBody = map[string]any{"count": count, "seed": seed}
	return tc.POST("/api/v1/identities", tc.LastRequestBody)
}

func (tc *TestContext) requestIdentitiesWithGender(ctx context.Context, count int, gender string) error {
	tc.LastRequestBody = map[string]any{"count": count, "gender": gender}
	return tc.POST("/api/v1/identities", tc.LastRequestBody)
}

func (tc *TestContext) requestIdentitiesFromRegion(ctx context.Context, count int, region string) error {
	tc.LastRequestBody = map[string]any{"count": count, "region": region}
	return tc.POST("/api/v1/identities", tc.LastRequestBody)
}

func (tc *TestContext) requestIdentitiesWithKeys(ctx context.Context, count int, keys string) error {
	tc.LastRequestBody = map[string]any{"count": count, "keys": splitCSV(keys)}
	return tc.POST("/api/v1/identities", tc.LastRequestBody)
}

func (tc *TestContext) repeatSameRequest(ctx context.Context) error {
	return tc.POST("/api/v1/identities", tc.LastRequestBody)
}

func (tc *TestContext) saveReturnedIdentities(ctx context.Context) error {
	ids, err := tc.Identities()
	if err != nil {
		return err
	}
	tc.SavedIdentities = ids
	return nil
}

func (tc *TestContext) requestFieldCatalog(ctx context.Context) error {
	return tc.GET("/api/v1/identities/fields", nil)
}

func (tc *TestContext) requestCardWithSeed(ctx context.Context, seed int) error {
	return tc.POST("/api/v1/cards", map[string]any{"seed": seed})
}

func (tc *TestContext) requestCardFromRegion(ctx context.Context, region string) error {
	return tc.POST("/api/v1/cards", map[string]any{"region": region})
}

func (tc *TestContext) probe(ctx context.Context, path string) error {
	return tc.GET(path, nil)
}

func (tc *TestContext) responseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	if got := tc.GetLastResponseStatus(); got != expectedStatus {
		return fmt.Errorf("expected status %d but got %d\nResponse: %s", expectedStatus, got, string(tc.LastResponseBody))
	}
	return nil
}

func (tc *TestContext) responseShouldContain(ctx context.Context, field string) error {
	if !tc.ResponseContains(field) {
		return fmt.Errorf("response does not contain %q\nResponse: %s", field, string(tc.LastResponseBody))
	}
	return nil
}

func (tc *TestContext) responseFieldShouldEqual(ctx context.Context, field, expectedValue string) error {
	actualValue, err := tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if fmt.Sprint(actualValue) != expectedValue {
		return fmt.Errorf("field %s: expected %s but got %v", field, expectedValue, actualValue)
	}
	return nil
}

func (tc *TestContext) shouldReceiveIdentities(ctx context.Context, count int) error {
	ids, err := tc.Identities()
	if err != nil {
		return err
	}
	if len(ids) != count {
		return fmt.Errorf("expected %d identities but got %d", count, len(ids))
	}
	return nil
}

func (tc *TestContext) nationalIDsShouldBeUnique(ctx context.Context) error {
	ids, err := tc.Identities()
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		nid, _ := id["national_id"].(string)
		if nid == "" {
			return fmt.Errorf("identity is missing a national id: %v", id)
		}
		if seen[nid] {
			return fmt.Errorf("duplicate national id %s", nid)
		}
		seen[nid] = true
	}
	return nil
}

func (tc *TestContext) identitiesShouldHaveGender(ctx context.Context, gender string) error {
	ids, err := tc.Identities()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if got, _ := id["gender"].(string); got != gender {
			return fmt.Errorf("expected gender %q but got %q for %v", gender, got, id["national_id"])
		}
	}
	return nil
}

func (tc *TestContext) nationalIDsShouldStartWith(ctx context.Context, prefix string) error {
	ids, err := tc.Identities()
	if err != nil {
		return err
	}
	for _, id := range ids {
		nid, _ := id["national_id"].(string)
		if !strings.HasPrefix(nid, prefix) {
			return fmt.Errorf("national id %s does not start with %s", nid, prefix)
		}
	}
	return nil
}

func (tc *TestContext) identitiesShouldExposeKeys(ctx context.Context, keys string) error {
	want := splitCSV(keys)
	sort.Strings(want)

	ids, err := tc.Identities()
	if err != nil {
		return err
	}
	for _, id := range ids {
		got := make([]string, 0, len(id))
		for k := range id {
			got = append(got, k)
		}
		sort.Strings(got)
		if strings.Join(got, ",") != strings.Join(want, ",") {
			return fmt.Errorf("expected keys %v but got %v", want, got)
		}
	}
	return nil
}

func (tc *TestContext) identitiesShouldMatchSaved(ctx context.Context) error {
	if tc.SavedIdentities == nil {
		return fmt.Errorf("no identities were saved")
	}
	ids, err := tc.Identities()
	if err != nil {
		return err
	}

	// Map keys marshal in sorted order, so byte equality is deterministic.
	saved, err := json.Marshal(tc.SavedIdentities)
	if err != nil {
		return err
	}
	current, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if !bytes.Equal(saved, current) {
		return fmt.Errorf("identities differ from the saved batch")
	}
	return nil
}

func (tc *TestContext) catalogShouldListEveryField(ctx context.Context) error {
	var payload struct {
		Fields []struct {
			Name  string `json:"name"`
			Label string `json:"label"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(tc.LastResponseBody, &payload); err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(payload.Fields) != len(models.FieldOrder) {
		return fmt.Errorf("expected %d fields but got %d", len(models.FieldOrder), len(payload.Fields))
	}

	names := make(map[string]bool, len(payload.Fields))
	for _, f := range payload.Fields {
		if f.Label == "" {
			return fmt.Errorf("field %s has no label", f.Name)
		}
		names[f.Name] = true
	}
	for _, name := range models.FieldOrder {
		if !names[name] {
			return fmt.Errorf("catalog is missing field %s", name)
		}
	}
	return nil
}

func (tc *TestContext) responseShouldBePNG(ctx context.Context) error {
	if ct := tc.LastResponse.Header.Get("Content-Type"); ct != "image/png" {
		return fmt.Errorf("expected image/png content type but got %s", ct)
	}
	magic := []byte("\x89PNG\r\n\x1a\n")
	if !bytes.HasPrefix(tc.LastResponseBody, magic) {
		return fmt.Errorf("response body is not a PNG (%d bytes)", len(tc.LastResponseBody))
	}
	return nil
}

func (tc *TestContext) avatarBackendHeaderPresent(ctx context.Context) error {
	if tc.LastResponse.Header.Get("X-Avatar-Backend") == "" {
		return fmt.Errorf("X-Avatar-Backend header is missing")
	}
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
