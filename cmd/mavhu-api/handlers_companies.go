package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mavhu/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// duplicateKeyCode is MongoDB's duplicate-key error code, exposed to
// clients in the error body.
const duplicateKeyCode = 11000

// uniqueCompanyFields carry unique indexes named "uniq_<field>".
var uniqueCompanyFields = []string{"registration_number", "email", "phone"}

// duplicateField maps a Mongo duplicate-key error back to the company
// field whose index was violated, via the index names set in newApp.
func duplicateField(err error) string {
	msg := err.Error()
	for _, f := range uniqueCompanyFields {
		if strings.Contains(msg, "uniq_"+f) {
			return f
		}
	}
	return ""
}

func (a *App) writeDuplicate(w http.ResponseWriter, err error) {
	field := duplicateField(err)
	writeErrBody(w, http.StatusConflict, errorResp{
		Error: "duplicate key",
		Code:  duplicateKeyCode,
		Field: field,
	})
}

// parsePageLimit reads ?page=&limit= with defaults 1 and 20, capping limit
// at 100.
func parsePageLimit(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// handleListCompanies returns one page of companies, newest first.
func (a *App) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	total, err := a.companies.CountDocuments(ctx, bson.M{})
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "db error")
		return
	}

	cur, err := a.companies.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page-1)*limit)).
		SetLimit(int64(limit)))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	companies := []models.Company{}
	if err := cur.All(ctx, &companies); err != nil {
		writeErr(w, http.StatusInternalServerError, "decode error")
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	writeJSON(w, http.StatusOK, companyListResp{
		Companies:  companies,
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	})
}

// handleGetCompany returns a single company by id.
func (a *App) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "bad id")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var c models.Company
	if err := a.companies.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		writeErr(w, http.StatusNotFound, "company not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleCreateCompany registers a company. Unique-index violations come
// back as 409 with code 11000 and the offending field.
func (a *App) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.RegistrationNumber == "" || req.Email == "" || req.Phone == "" {
		writeErr(w, http.StatusBadRequest, "name, registration_number, email and phone are required")
		return
	}

	now := time.Now()
	c := models.Company{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Email:              strings.ToLower(req.Email),
		Phone:              req.Phone,
		ContactPerson:      req.ContactPerson,
		Industry:           req.Industry,
		Country:            req.Country,
		AreaOfInterest:     req.AreaOfInterest,
		ESGStatus:          models.ESGStatusNotCollected,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if req.ESGStatus != "" {
		c.ESGStatus = req.ESGStatus
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	res, err := a.companies.InsertOne(ctx, &c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			a.writeDuplicate(w, err)
			return
		}
		writeErr(w, http.StatusInternalServerError, "db error")
		return
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	writeJSON(w, http.StatusCreated, c)

	if c.AreaOfInterest != nil {
		a.notifyProcessor(ctx, processorReportReq{
			CompanyID:      c.ID.Hex(),
			AreaOfInterest: c.AreaOfInterest,
			ESGStatus:      c.ESGStatus,
		})
	}
}

// handleUpdateCompany applies a partial update; only provided fields are
// set.
func (a *App) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "bad id")
		return
	}

	var req companyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.RegistrationNumber != "" {
		set["registration_number"] = req.RegistrationNumber
	}
	if req.Email != "" {
		set["email"] = strings.ToLower(req.Email)
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}
	if req.ContactPerson != "" {
		set["contact_person"] = req.ContactPerson
	}
	if req.Industry != "" {
		set["industry"] = req.Industry
	}
	if req.Country != "" {
		set["country"] = req.Country
	}
	if req.AreaOfInterest != nil {
		set["area_of_interest"] = req.AreaOfInterest
	}
	if req.ESGStatus != "" {
		set["esg_status"] = req.ESGStatus
	}
	if len(set) == 0 {
		writeErr(w, http.StatusBadRequest, "nothing to update")
		return
	}
	set["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	res := a.companies.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var out models.Company
	if err := res.Decode(&out); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			a.writeDuplicate(w, err)
			return
		}
		writeErr(w, http.StatusNotFound, "company not found")
		return
	}
	writeJSON(w, http.StatusOK, out)

	if req.AreaOfInterest != nil {
		// Geometry changed, the processor needs to recompute reports.
		a.notifyProcessor(ctx, processorReportReq{
			CompanyID:      out.ID.Hex(),
			AreaOfInterest: out.AreaOfInterest,
			ESGStatus:      out.ESGStatus,
		})
	}
}

// handleDeleteCompany removes a company and its ingested reports.
func (a *App) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "bad id")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := a.companies.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "db error")
		return
	}
	if res.DeletedCount == 0 {
		writeErr(w, http.StatusNotFound, "company not found")
		return
	}
	if _, err := a.reports.DeleteMany(ctx, bson.M{"companyId": oid.Hex()}); err != nil {
		a.log.Warn("orphaned reports after company delete", zap.String("companyId", oid.Hex()), zap.Error(err))
	}
	writeJSON(w, http.StatusOK, bson.M{"ok": true})
}
