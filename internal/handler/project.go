package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/internal/resputil"
	"github.com/meloniq-lab/glotline/internal/util"
	"github.com/meloniq-lab/glotline/pkg/authz"
	"github.com/meloniq-lab/glotline/pkg/logutils"
	"github.com/meloniq-lab/glotline/pkg/store"
)

//nolint:gochecknoinits // This is the standard way to register a handler.
func init() {
	Registers = append(Registers, NewProjectMgr)
}

type ProjectMgr struct {
	name     string
	projects store.ProjectStore
	gate     authz.Gate
}

func NewProjectMgr(conf *RegisterConfig) Manager {
	return &ProjectMgr{
		name:     "projects",
		projects: conf.Stores.Projects,
		gate:     conf.Gate,
	}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/projects", mgr.ListProjects)
	g.GET("/projects/:id", mgr.GetProject)
}

func (mgr *ProjectMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("/projects", mgr.CreateProject)
	g.PUT("/projects/:id", mgr.UpdateProject)
	g.DELETE("/projects/:id", mgr.DeleteProject)
}

func (mgr *ProjectMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type ProjectReq struct {
	Name              string  `json:"name"`
	Slug              string  `json:"slug"`
	Description       *string `json:"description"`
	SourceURLTemplate *string `json:"source_url_template"`
	ParentProjectID   *uint   `json:"parent_project_id"`
	Active            *bool   `json:"active"`
}

// ListProjects godoc
// @Summary List projects, optionally scoped to a parent
// @Produce json
// @Param parent_project_id query int false "Parent project ID"
// @Param fields query string false "Comma-separated field selection"
// @Router /api/v1/projects [get]
func (mgr *ProjectMgr) ListProjects(c *gin.Context) {
	var parentID *uint
	if id := queryUint(c, "parent_project_id"); id != 0 {
		parent, err := mgr.projects.Get(c, id)
		if err != nil {
			logutils.Log.WithError(err).Error("list projects: parent lookup")
			resputil.Error(c, resputil.InternalError)
			return
		}
		if parent == nil {
			resputil.Error(c, resputil.ProjectNotFound)
			return
		}
		parentID = &id
	}

	projects, err := mgr.projects.List(c, parentID)
	if err != nil {
		logutils.Log.WithError(err).Error("list projects")
		resputil.Error(c, resputil.InternalError)
		return
	}

	fields := fieldsFromQuery(c)
	setTotalCount(c, len(projects))
	resputil.Success(c, lo.Map(projects, func(p model.Project, _ int) map[string]any {
		return projectSchema.Project(&p, fields)
	}))
}

// GetProject godoc
// @Summary Get a single project by id
// @Produce json
// @Router /api/v1/projects/{id} [get]
func (mgr *ProjectMgr) GetProject(c *gin.Context) {
	project, err := mgr.projects.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("get project")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if project == nil {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}
	resputil.Success(c, projectSchema.Project(project, fieldsFromQuery(c)))
}

// CreateProject godoc
// @Summary Create a project
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/projects [post]
func (mgr *ProjectMgr) CreateProject(c *gin.Context) {
	var req ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	// Parent must exist before creation if one is specified.
	if req.ParentProjectID != nil {
		parent, err := mgr.projects.Get(c, *req.ParentProjectID)
		if err != nil {
			logutils.Log.WithError(err).Error("create project: parent lookup")
			resputil.Error(c, resputil.InternalError)
			return
		}
		if parent == nil {
			resputil.Error(c, resputil.ProjectNotFound)
			return
		}
	}

	name := sanitize(req.Name)
	slug := sanitize(req.Slug)
	if name == "" || slug == "" {
		resputil.Error(c, resputil.ProjectMissingParams)
		return
	}

	// Slug must be unique among siblings.
	sibling, err := mgr.projects.BySlug(c, req.ParentProjectID, slug)
	if err != nil {
		logutils.Log.WithError(err).Error("create project: sibling lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if sibling != nil {
		resputil.Error(c, resputil.ProjectAlreadyExists)
		return
	}

	targetID := uint(0)
	if req.ParentProjectID != nil {
		targetID = *req.ParentProjectID
	}
	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionWrite, authz.ObjectProject, targetID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	project := model.Project{
		Name:              name,
		Slug:              slug,
		Description:       req.Description,
		SourceURLTemplate: req.SourceURLTemplate,
		ParentProjectID:   req.ParentProjectID,
		Active:            req.Active == nil || *req.Active,
	}
	if err := mgr.projects.Create(c, &project); err != nil {
		logutils.Log.WithError(err).Error("create project")
		resputil.Error(c, resputil.ProjectCreationFailed)
		return
	}
	resputil.Created(c, projectSchema.Project(&project, nil))
}

// UpdateProject godoc
// @Summary Update a project
// @Accept json
// @Produce json
// @Security Bearer
// @Router /api/v1/projects/{id} [put]
func (mgr *ProjectMgr) UpdateProject(c *gin.Context) {
	project, err := mgr.projects.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("update project: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if project == nil {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}

	var req ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, resputil.InvalidRequest)
		return
	}

	// Updates re-validate cross references exactly as create does. The walk
	// up the ancestor chain rejects reparenting under the project itself or
	// any of its descendants.
	for ancestorID := req.ParentProjectID; ancestorID != nil; {
		if *ancestorID == project.ID {
			resputil.Error(c, resputil.InvalidRequest)
			return
		}
		ancestor, err := mgr.projects.Get(c, *ancestorID)
		if err != nil {
			logutils.Log.WithError(err).Error("update project: ancestor lookup")
			resputil.Error(c, resputil.InternalError)
			return
		}
		if ancestor == nil {
			resputil.Error(c, resputil.ProjectNotFound)
			return
		}
		ancestorID = ancestor.ParentProjectID
	}

	name := sanitize(req.Name)
	slug := sanitize(req.Slug)
	if name == "" || slug == "" {
		resputil.Error(c, resputil.ProjectMissingParams)
		return
	}

	sibling, err := mgr.projects.BySlug(c, req.ParentProjectID, slug)
	if err != nil {
		logutils.Log.WithError(err).Error("update project: sibling lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if sibling != nil && sibling.ID != project.ID {
		resputil.Error(c, resputil.ProjectAlreadyExists)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionWrite, authz.ObjectProject, project.ID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	project.Name = name
	project.Slug = slug
	project.Description = req.Description
	project.SourceURLTemplate = req.SourceURLTemplate
	project.ParentProjectID = req.ParentProjectID
	if req.Active != nil {
		project.Active = *req.Active
	}
	if err := mgr.projects.Update(c, project); err != nil {
		logutils.Log.WithError(err).Error("update project")
		resputil.Error(c, resputil.ProjectUpdateFailed)
		return
	}
	resputil.Success(c, projectSchema.Project(project, nil))
}

// DeleteProject godoc
// @Summary Delete a project
// @Security Bearer
// @Router /api/v1/projects/{id} [delete]
func (mgr *ProjectMgr) DeleteProject(c *gin.Context) {
	project, err := mgr.projects.Get(c, pathID(c, "id"))
	if err != nil {
		logutils.Log.WithError(err).Error("delete project: lookup")
		resputil.Error(c, resputil.InternalError)
		return
	}
	if project == nil {
		resputil.Error(c, resputil.ProjectNotFound)
		return
	}

	if !mgr.gate.Can(c, util.GetPrincipal(c), authz.ActionDelete, authz.ObjectProject, project.ID) {
		resputil.Error(c, resputil.Forbidden)
		return
	}

	if err := mgr.projects.Delete(c, project.ID); err != nil {
		logutils.Log.WithError(err).Error("delete project")
		resputil.Error(c, resputil.ProjectDeletionFailed)
		return
	}
	resputil.NoContent(c)
}
